package geometry

import (
	"encoding/binary"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBuffer_Append(t *testing.T) {
	b := NewBuffer(BufferTypeVertex, 12)
	Append(b, mgl32.Vec3{1, 2, 3})
	Append(b, mgl32.Vec3{4, 5, 6})

	if got := b.Size(); got != 24 {
		t.Errorf("Size() = %d, want 24", got)
	}
	if got := b.ElementCount(); got != 2 {
		t.Errorf("ElementCount() = %d, want 2", got)
	}
	if got := vec3At(b.Data(), 12); got != (mgl32.Vec3{4, 5, 6}) {
		t.Errorf("second element = %v", got)
	}
}

func TestBuffer_ElementCountPartial(t *testing.T) {
	b := NewBuffer(BufferTypeIndex, 4)
	Append(b, uint32(1))
	Append(b, uint16(2))

	// Six bytes hold one whole 4-byte element.
	if got := b.ElementCount(); got != 1 {
		t.Errorf("ElementCount() = %d, want 1", got)
	}
}

func TestBuffer_ZeroElementSize(t *testing.T) {
	b := NewBuffer(BufferTypeIndex, 0)
	if got := b.ElementCount(); got != 0 {
		t.Errorf("ElementCount() = %d, want 0", got)
	}
}

func TestBuffer_SetSize(t *testing.T) {
	b := NewBuffer(BufferTypeIndex, 2)
	b.SetSize(6)
	if b.Size() != 6 || b.ElementCount() != 3 {
		t.Fatalf("after SetSize(6): size %d, count %d", b.Size(), b.ElementCount())
	}
	for _, c := range b.Data() {
		if c != 0 {
			t.Fatal("SetSize growth is not zero-filled")
		}
	}

	binary.LittleEndian.PutUint16(b.Data()[2:], 0xABCD)
	if got := binary.LittleEndian.Uint16(b.Bytes()[2:]); got != 0xABCD {
		t.Errorf("element 1 = %#x, want 0xabcd", got)
	}

	b.SetSize(2)
	if b.ElementCount() != 1 {
		t.Errorf("after shrink ElementCount() = %d, want 1", b.ElementCount())
	}
}

func TestBuffer_BytesIsCopy(t *testing.T) {
	b := NewBuffer(BufferTypeVertex, 4)
	Append(b, float32(1))

	c := b.Bytes()
	c[0] = 0xFF
	if b.Data()[0] == 0xFF {
		t.Error("Bytes() aliases the buffer")
	}
}
