package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachmentLever(t *testing.T) {
	r := Default()
	want := map[int]Direction{
		1: North,
		2: South,
		3: East,
		4: West,
		5: Down,
		6: Down,
	}

	for _, offset := range []int{0, 8} {
		for data := 0; data < 8; data++ {
			dir, ok := r.Attachment(int(LeverBlockID), data+offset)
			expected, attached := want[data]
			require.Equal(t, attached, ok, "data=%d", data+offset)
			if attached {
				assert.Equal(t, expected, dir, "data=%d", data+offset)
			}
		}
	}
}

func TestAttachmentDownward(t *testing.T) {
	r := Default()
	for _, id := range downwardAttached {
		for data := 0; data <= 0xf; data++ {
			dir, ok := r.Attachment(int(id), data)
			require.True(t, ok, "блок %d", id)
			assert.Equal(t, Down, dir)
		}
	}
}

func TestAttachmentFreeStanding(t *testing.T) {
	r := Default()
	for _, id := range []int{int(StoneBlockID), int(AirBlockID), int(ChestBlockID), 1000, -1, MaxBlockID + 1} {
		_, ok := r.Attachment(id, 0)
		assert.False(t, ok, "блок %d", id)
	}
}

func TestAttachmentFamilies(t *testing.T) {
	r := Default()
	tests := []struct {
		name string
		id   BlockID
		data int
		want Direction
		ok   bool
	}{
		{"поршень вверх", PistonExtensionBlockID, 0, Up, true},
		{"поршень вниз", PistonExtensionBlockID, 1, Down, true},
		{"липкий поршень вверх", PistonExtensionBlockID, 8, Up, true},
		{"поршень север", PistonExtensionBlockID, 5, North, true},
		{"поршень юг", PistonExtensionBlockID, 12, South, true},
		{"факел на полу", TorchBlockID, 5, Down, true},
		{"факел на стене", TorchBlockID, 1, North, true},
		{"факел без опоры", TorchBlockID, 9, 0, false},
		{"лестница", LadderBlockID, 2, West, true},
		{"табличка на стене", WallSignBlockID, 4, South, true},
		{"деревянная кнопка без опоры", WoodenButtonBlockID, 11, 0, false},
		{"каменная кнопка нажата", StoneButtonBlockID, 12, West, true},
		{"люк", TrapDoorBlockID, 0, West, true},
		{"люк открыт", TrapDoorBlockID, 7, North, true},
		{"люк открыт сбоку", TrapDoorBlockID, 5, East, true},
		{"лоза сверху", VineBlockID, 0, Up, true},
		{"лоза восток", VineBlockID, 4, East, true},
		{"лоза две стороны", VineBlockID, 3, 0, false},
		{"какао", CocoaPlantBlockID, 6, East, true},
		{"натяжной крюк", TripwireHookBlockID, 4, East, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, ok := r.Attachment(int(tt.id), tt.data)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, dir)
			}
		})
	}
}

func TestCardinalFamilyExpand(t *testing.T) {
	f := cardinals(LeverBlockID, 4, 1, 3, 2).with(5, Down).withParity(8)
	got := f.expand()

	assert.Len(t, got, 10)
	assert.Equal(t, West, got[4])
	assert.Equal(t, West, got[12])
	assert.Equal(t, Down, got[13])

	// with не должен портить исходное семейство
	base := cardinals(TorchBlockID, 4, 1, 3, 2)
	a := base.with(5, Down)
	b := base.with(5, Up)
	assert.Empty(t, base.extra)
	assert.Equal(t, Down, a.expand()[5])
	assert.Equal(t, Up, b.expand()[5])
}

func TestAttachmentConflict(t *testing.T) {
	saved := attachmentFamilies
	t.Cleanup(func() { attachmentFamilies = saved })

	attachmentFamilies = append([]cardinalFamily{cardinals(CropsBlockID, 0, 1, 2, 3)}, saved...)

	_, err := New()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAttachmentConflict)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "north", North.String())
	assert.Equal(t, "down", Down.String())
	assert.Equal(t, "unknown", Direction(42).String())
}
