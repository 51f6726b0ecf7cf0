// Package objfile extracts the embedded MIR pack section from a compiled
// ELF artifact.
package objfile

import (
	"debug/elf"
	"fmt"
)

// MIRSection is the section name the compiler embeds the pack stream under.
const MIRSection = ".yk_mir_cfg"

// SectionData opens the artifact at path and returns the raw bytes of the
// named section.
func SectionData(path, section string) ([]byte, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open artifact %q: %w", path, err)
	}
	defer f.Close()

	sec := f.Section(section)
	if sec == nil {
		return nil, fmt.Errorf("artifact %q has no %s section", path, section)
	}
	data, err := sec.Data()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s section of %q: %w", section, path, err)
	}
	return data, nil
}
