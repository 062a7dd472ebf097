package block

import "sort"

// PlacementTier: очередь, в которой блок ставится при массовой установке
type PlacementTier uint8

const (
	// TierNormal: обычные блоки, ставятся первыми
	TierNormal PlacementTier = iota
	// TierPlaceAfterNormal: ставятся после того, как есть опора
	TierPlaceAfterNormal
	// TierPlaceLast: ставятся после всего остального
	TierPlaceLast
)

// String возвращает строковое представление очереди
func (t PlacementTier) String() string {
	switch t {
	case TierNormal:
		return "normal"
	case TierPlaceAfterNormal:
		return "place_after_normal"
	case TierPlaceLast:
		return "place_last"
	default:
		return "unknown"
	}
}

// placeAfterNormal: навесные блоки, рельсы, растения
var placeAfterNormal = []BlockID{
	SaplingBlockID,
	BedBlockID,
	PoweredRailBlockID,
	DetectorRailBlockID,
	LongGrassBlockID,
	DeadBushBlockID,
	PistonExtensionBlockID,
	YellowFlowerBlockID,
	RedFlowerBlockID,
	BrownMushroomBlockID,
	RedMushroomBlockID,
	TorchBlockID,
	FireBlockID,
	RedstoneWireBlockID,
	CropsBlockID,
	LadderBlockID,
	MinecartTracksBlockID,
	LeverBlockID,
	StonePressurePlateBlockID,
	WoodenPressurePlateBlockID,
	RedstoneTorchOffBlockID,
	RedstoneTorchOnBlockID,
	StoneButtonBlockID,
	SnowBlockID,
	PortalBlockID,
	RedstoneRepeaterOffBlockID,
	RedstoneRepeaterOnBlockID,
	TrapDoorBlockID,
	VineBlockID,
	LilyPadBlockID,
	NetherWartBlockID,
	PistonBaseBlockID,
	PistonStickyBaseBlockID,
	PistonMovingPieceBlockID,
	CocoaPlantBlockID,
	TripwireHookBlockID,
	TripwireBlockID,
	FlowerPotBlockID,
	CarrotsBlockID,
	PotatoesBlockID,
	WoodenButtonBlockID,
	HeadBlockID,
}

// placeLast: таблички, двери, кактусы и прочее, что держится на навесных блоках
var placeLast = []BlockID{
	SignPostBlockID,
	WoodenDoorBlockID,
	WallSignBlockID,
	IronDoorBlockID,
	CactusBlockID,
	ReedBlockID,
	CakeBlockID,
	PistonExtensionBlockID,
	PistonMovingPieceBlockID,
}

// buildTiers собирает классификацию; placeLast записывается последним и
// поэтому вытесняет placeAfterNormal для блоков из обоих списков
func buildTiers() map[BlockID]PlacementTier {
	tiers := make(map[BlockID]PlacementTier, len(placeAfterNormal)+len(placeLast))
	for _, id := range placeAfterNormal {
		tiers[id] = TierPlaceAfterNormal
	}
	for _, id := range placeLast {
		tiers[id] = TierPlaceLast
	}
	return tiers
}

// Tier возвращает очередь установки блока
func (r *Registry) Tier(id int) PlacementTier {
	bid, ok := knownID(id)
	if !ok {
		return TierNormal
	}
	if tier, ok := r.tiers[bid]; ok {
		return tier
	}
	return TierNormal
}

// IsRail сообщает, является ли блок рельсом для анализа связности
func (r *Registry) IsRail(id int) bool {
	return id == int(MinecartTracksBlockID) || id == int(PoweredRailBlockID)
}

// PlaceAfterNormalIDs возвращает отсортированный список блоков второй очереди
func (r *Registry) PlaceAfterNormalIDs() []BlockID {
	return r.tierMembers(TierPlaceAfterNormal)
}

// PlaceLastIDs возвращает отсортированный список блоков последней очереди
func (r *Registry) PlaceLastIDs() []BlockID {
	return r.tierMembers(TierPlaceLast)
}

func (r *Registry) tierMembers(tier PlacementTier) []BlockID {
	var out []BlockID
	for id, t := range r.tiers {
		if t == tier {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// TierOf возвращает очередь установки через общий реестр
func TierOf(id int) PlacementTier {
	return Default().Tier(id)
}

// IsRail проверяет рельс через общий реестр
func IsRail(id int) bool {
	return Default().IsRail(id)
}
