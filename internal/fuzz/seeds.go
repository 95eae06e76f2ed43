package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const maxSeedBytes = 64 << 10

const maxFuzzInput = 1 << 16 // 64 KiB

var mofSeeds = []string{
	"",
	`#pragma include ("qualifiers.mof")`,
	`#pragma locale ("en_US")`,
	`qualifier Abstract : boolean = false, scope(class, association, indication), flavor(restricted);`,
	`qualifier ValueMap : string[], scope(property, method, parameter);`,
	`[Abstract, Description ("An element.")]
class CIM_ManagedElement {
      [MaxLen(256) : ToSubclass]
   string Caption;
   uint16 Codes[] = {1, 2};
   datetime Installed = "20260101000000.000000+000";
};`,
	`[Association]
class CIM_Dependency {
   [Key] CIM_ManagedElement REF Antecedent;
   [Key] CIM_ManagedElement REF Dependent;
   uint32 Reset([IN] string Reason, [OUT] uint8 Flags[4]);
};`,
	`instance of Acme_LogicalDisk as $Disk { DriveLetter = "C"; Sizes = {1, 2}; Owner = $Admin; Empty = null; };`,
	`class A { string S[99999999999999999999999]; };`,
	`class A : { };`,
	`"unterminated`,
	`/* open comment`,
	`[Q(1, ] class`,
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range mofSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds every .mof file under the repository testdata.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".mof") {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
