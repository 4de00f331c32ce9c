package memory

import "testing"

func TestNew8BitRAMBankRejectsNonPowerOfTwo(t *testing.T) {
	if _, err := New8BitRAMBank(100); err == nil {
		t.Fatalf("want error for non-power-of-2 size")
	}
}

func TestReadWriteAliasesOnSmallBank(t *testing.T) {
	b, err := New8BitRAMBank(256)
	if err != nil {
		t.Fatalf("New8BitRAMBank: %v", err)
	}
	b.Write(0x00FF, 0x42)
	if got := b.Read(0x01FF); got != 0x42 {
		t.Fatalf("aliased read = %.2X, want 0x42", got)
	}
}

func TestPowerOnZeroes(t *testing.T) {
	b, err := New8BitRAMBank(256)
	if err != nil {
		t.Fatalf("New8BitRAMBank: %v", err)
	}
	b.Write(0x10, 0xFF)
	b.PowerOn()
	if got := b.Read(0x10); got != 0 {
		t.Fatalf("Read after PowerOn = %.2X, want 0", got)
	}
}
