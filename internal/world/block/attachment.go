package block

import "fmt"

// Direction: направление к соседнему блоку
type Direction uint8

const (
	Up Direction = iota
	Down
	North
	South
	East
	West
)

// String возвращает строковое представление направления
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// cardinalFamily описывает, какие значения данных блока соответствуют
// креплению к западу, северу, востоку и югу. parity задаёт дополнительный бит
// (например, «включён»), при котором те же направления повторяются.
type cardinalFamily struct {
	id                       BlockID
	west, north, east, south int
	extra                    []dataDirection
	parity                   int
}

type dataDirection struct {
	data int
	dir  Direction
}

func cardinals(id BlockID, west, north, east, south int) cardinalFamily {
	return cardinalFamily{id: id, west: west, north: north, east: east, south: south}
}

// with добавляет отдельное значение данных вне четырёх сторон
func (f cardinalFamily) with(data int, dir Direction) cardinalFamily {
	extra := make([]dataDirection, len(f.extra), len(f.extra)+1)
	copy(extra, f.extra)
	f.extra = append(extra, dataDirection{data: data, dir: dir})
	return f
}

// withParity повторяет семейство со смещением bit
func (f cardinalFamily) withParity(bit int) cardinalFamily {
	f.parity = bit
	return f
}

// expand раскрывает семейство в отображение «данные → направление»
func (f cardinalFamily) expand() map[int]Direction {
	offsets := []int{0}
	if f.parity != 0 {
		offsets = append(offsets, f.parity)
	}

	out := make(map[int]Direction, 4*len(offsets))
	for _, off := range offsets {
		out[(off+f.west)&0xf] = West
		out[(off+f.north)&0xf] = North
		out[(off+f.east)&0xf] = East
		out[(off+f.south)&0xf] = South
		for _, e := range f.extra {
			out[(off+e.data)&0xf] = e.dir
		}
	}
	return out
}

// Блоки, которые всегда держатся за блок снизу
var downwardAttached = []BlockID{
	SaplingBlockID,
	PoweredRailBlockID,
	DetectorRailBlockID,
	LongGrassBlockID,
	DeadBushBlockID,
	YellowFlowerBlockID,
	RedFlowerBlockID,
	BrownMushroomBlockID,
	RedMushroomBlockID,
	RedstoneWireBlockID,
	CropsBlockID,
	SignPostBlockID,
	WoodenDoorBlockID,
	MinecartTracksBlockID,
	StonePressurePlateBlockID,
	IronDoorBlockID,
	WoodenPressurePlateBlockID,
	CactusBlockID,
	ReedBlockID,
	CakeBlockID,
	RedstoneRepeaterOffBlockID,
	RedstoneRepeaterOnBlockID,
	PumpkinStemBlockID,
	MelonStemBlockID,
	NetherWartBlockID,
	TripwireBlockID,
}

// attachmentFamilies: крепления, зависящие от данных
var attachmentFamilies = []cardinalFamily{
	cardinals(PistonExtensionBlockID, 2, 5, 3, 4).with(0, Up).with(1, Down).withParity(8),
	cardinals(TorchBlockID, 4, 1, 3, 2).with(5, Down),
	cardinals(RedstoneTorchOnBlockID, 4, 1, 3, 2).with(5, Down),
	cardinals(RedstoneTorchOffBlockID, 4, 1, 3, 2).with(5, Down),
	cardinals(LadderBlockID, 2, 5, 3, 4),
	cardinals(WallSignBlockID, 2, 5, 3, 4),
	cardinals(LeverBlockID, 4, 1, 3, 2).with(5, Down).with(6, Down).withParity(8),
	cardinals(StoneButtonBlockID, 4, 1, 3, 2).withParity(8),
	cardinals(TrapDoorBlockID, 0, 3, 1, 2).withParity(4),
	// у лозы каждый бит задаёт свою сторону; здесь только одиночные значения
	cardinals(VineBlockID, 1, 2, 4, 8).with(0, Up),
	cardinals(CocoaPlantBlockID, 0, 1, 2, 3).withParity(4),
	cardinals(TripwireHookBlockID, 2, 3, 0, 1).withParity(4),
}

type attachmentTable struct {
	nonData map[BlockID]Direction
	data    map[uint32]Direction
}

func buildAttachmentTable() (attachmentTable, error) {
	t := attachmentTable{
		nonData: make(map[BlockID]Direction, len(downwardAttached)),
		data:    make(map[uint32]Direction),
	}
	for _, id := range downwardAttached {
		t.nonData[id] = Down
	}

	for _, f := range attachmentFamilies {
		if _, conflict := t.nonData[f.id]; conflict {
			return attachmentTable{}, fmt.Errorf("%w: %d", ErrAttachmentConflict, f.id)
		}
		for data, dir := range f.expand() {
			t.data[typeDataKey(f.id, data)] = dir
		}
	}
	return t, nil
}

// Attachment возвращает направление к блоку, на котором держится блок id
// со значением данных data. false означает свободно стоящий блок.
func (r *Registry) Attachment(id, data int) (Direction, bool) {
	bid, ok := knownID(id)
	if !ok {
		return 0, false
	}
	if dir, ok := r.attach.nonData[bid]; ok {
		return dir, true
	}
	dir, ok := r.attach.data[typeDataKey(bid, data)]
	return dir, ok
}

// AttachmentOf разрешает крепление через общий реестр
func AttachmentOf(id, data int) (Direction, bool) {
	return Default().Attachment(id, data)
}
