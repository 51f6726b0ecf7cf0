package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"mircfg/internal/objfile"
	"mircfg/internal/pack"
)

// writeArtifact builds a minimal ELF whose MIR section holds payload.
func writeArtifact(t *testing.T, dir string, payload []byte) string {
	t.Helper()

	section := objfile.MIRSection
	strtab := []byte("\x00" + section + "\x00.shstrtab\x00")
	payloadOff := uint64(64)
	strtabOff := payloadOff + uint64(len(payload))

	var buf bytes.Buffer
	buf.Write([]byte{0x7f, 'E', 'L', 'F', 2, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	le := binary.LittleEndian
	binary.Write(&buf, le, uint16(1))                     // e_type ET_REL
	binary.Write(&buf, le, uint16(62))                    // e_machine x86-64
	binary.Write(&buf, le, uint32(1))                     // e_version
	binary.Write(&buf, le, uint64(0))                     // e_entry
	binary.Write(&buf, le, uint64(0))                     // e_phoff
	binary.Write(&buf, le, strtabOff+uint64(len(strtab))) // e_shoff
	binary.Write(&buf, le, uint32(0))                     // e_flags
	binary.Write(&buf, le, [4]uint16{64, 0, 0, 64})       // ehsize, phentsize, phnum, shentsize
	binary.Write(&buf, le, [2]uint16{3, 2})               // shnum, shstrndx
	buf.Write(payload)
	buf.Write(strtab)

	writeSection := func(name, typ uint32, off, size uint64) {
		binary.Write(&buf, le, name)
		binary.Write(&buf, le, typ)
		binary.Write(&buf, le, [2]uint64{0, 0}) // sh_flags, sh_addr
		binary.Write(&buf, le, off)
		binary.Write(&buf, le, size)
		binary.Write(&buf, le, [2]uint32{0, 0}) // sh_link, sh_info
		binary.Write(&buf, le, [2]uint64{1, 0}) // sh_addralign, sh_entsize
	}
	writeSection(0, 0, 0, 0)
	writeSection(1, 1, payloadOff, uint64(len(payload)))
	writeSection(uint32(2+len(section)), 3, strtabOff, uint64(len(strtab)))

	path := filepath.Join(dir, "artifact")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func encodeBodies(t *testing.T, ids ...pack.DefID) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	for _, id := range ids {
		rec := pack.Record{
			Kind: pack.RecordBody,
			Body: &pack.Body{
				DefID: id,
				Blocks: []pack.Block{
					{Term: pack.Terminator{Kind: pack.TermGoto, Goto: pack.GotoTerm{Target: 1}}},
					{Term: pack.Terminator{Kind: pack.TermReturn}},
				},
			},
		}
		if err := enc.Encode(&rec); err != nil {
			t.Fatalf("encode %v: %v", id, err)
		}
	}
	return buf.Bytes()
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SilenceUsage = true
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRun_RendersEveryFunction(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	artifact := writeArtifact(t, dir, encodeBodies(t,
		pack.DefID{CrateHash: 1, DefIdx: 10},
		pack.DefID{CrateHash: 2, DefIdx: 20},
	))

	out, err := execute(t, artifact, "--renderer=true", "--out-dir", filepath.Join(dir, "mirs"))
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	if !strings.Contains(out, "1-10") || !strings.Contains(out, "2-20") {
		t.Errorf("stdout should list both function ids:\n%s", out)
	}
	for _, name := range []string{"mir-1-10.dot.txt", "mir-2-20.dot.txt"} {
		if _, err := os.Stat(filepath.Join(dir, "mirs", name)); err != nil {
			t.Errorf("graph file missing: %v", err)
		}
	}
}

// TestRun_HaltsOnDecodeFailure checks the mid-stream failure contract:
// functions decoded before the bad record stay rendered, the run fails.
func TestRun_HaltsOnDecodeFailure(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	payload := encodeBodies(t,
		pack.DefID{CrateHash: 1, DefIdx: 1},
		pack.DefID{CrateHash: 2, DefIdx: 2},
	)
	payload = append(payload, 0xc1) // reserved msgpack code, never valid
	artifact := writeArtifact(t, dir, payload)

	out, err := execute(t, artifact, "--renderer=true", "--out-dir", filepath.Join(dir, "mirs"))
	if err == nil {
		t.Fatalf("execute should fail on the malformed record:\n%s", out)
	}
	for _, name := range []string{"mir-1-1.dot.txt", "mir-2-2.dot.txt"} {
		if _, statErr := os.Stat(filepath.Join(dir, "mirs", name)); statErr != nil {
			t.Errorf("already-decoded function should stay rendered: %v", statErr)
		}
	}
}

func TestRun_MissingArtifact(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if _, err := execute(t, filepath.Join(dir, "nope"), "--renderer=true"); err == nil {
		t.Error("missing artifact should fail the run")
	}
}
