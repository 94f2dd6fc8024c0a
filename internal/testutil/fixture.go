package testutil

// SampleProject is a trimmed but structurally faithful pbxproj document:
// OldFile.swift appears in all three declaration shapes, and the
// AppMain.swift build-file entry serves as a stable insertion anchor.
const SampleProject = `// !$*UTF8*$!
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

// SampleAnchor is the anchor declaration inside SampleProject.
const SampleAnchor = `AA0000000000000000000003 /* AppMain.swift in Sources */ = {isa = PBXBuildFile; fileRef = AA0000000000000000000004 /* AppMain.swift */; };`
