package pbx

// sampleProject is a trimmed but structurally faithful pbxproj snippet: one
// stale file present in all three shapes, one known-good file usable as an
// insertion anchor.
const sampleProject = `// !$*UTF8*$!
{
	archiveVersion = 1;
	objectVersion = 56;
	objects = {

/* Begin PBXBuildFile section */
		AA0000000000000000000001 /* OldFile.swift in Sources */ = {isa = PBXBuildFile; fileRef = AA0000000000000000000002 /* OldFile.swift */; };
		AA0000000000000000000003 /* AppMain.swift in Sources */ = {isa = PBXBuildFile; fileRef = AA0000000000000000000004 /* AppMain.swift */; };
/* End PBXBuildFile section */

/* Begin PBXFileReference section */
		AA0000000000000000000002 /* OldFile.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = OldFile.swift; sourceTree = "<group>"; };
		AA0000000000000000000004 /* AppMain.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = AppMain.swift; sourceTree = "<group>"; };
/* End PBXFileReference section */

/* Begin PBXSourcesBuildPhase section */
		AA0000000000000000000005 /* Sources */ = {
			isa = PBXSourcesBuildPhase;
			files = (
				AA0000000000000000000001 /* OldFile.swift in Sources */,
				AA0000000000000000000003 /* AppMain.swift in Sources */,
			);
		};
/* End PBXSourcesBuildPhase section */
	};
}
`

// sampleAnchor is the known-good build-file declaration used as the
// insertion anchor in tests.
const sampleAnchor = `AA0000000000000000000003 /* AppMain.swift in Sources */ = {isa = PBXBuildFile; fileRef = AA0000000000000000000004 /* AppMain.swift */; };`
