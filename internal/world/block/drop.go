package block

import "fmt"

// DropKind определяет вид результата разрушения блока
type DropKind uint8

const (
	// DropItem: выпадает конкретный предмет
	DropItem DropKind = iota
	// DropEmpty: блок исчезает без следа
	DropEmpty
	// DropIndestructible: блок нельзя разрушать, вызывающий обязан
	// проверить это до удаления
	DropIndestructible
)

// String возвращает строковое представление вида выпадения
func (k DropKind) String() string {
	switch k {
	case DropItem:
		return "item"
	case DropEmpty:
		return "empty"
	case DropIndestructible:
		return "indestructible"
	default:
		return "unknown"
	}
}

// ItemStack: стопка предметов. ID может быть как блоком, так и предметом.
type ItemStack struct {
	ID     int `json:"id"`
	Amount int `json:"amount"`
	Data   int `json:"data"`
}

// DropOutcome: результат разрешения выпадения
type DropOutcome struct {
	Kind DropKind
	Item ItemStack
}

// IsItem сообщает, выпадает ли предмет
func (o DropOutcome) IsItem() bool {
	return o.Kind == DropItem
}

func (o DropOutcome) String() string {
	if o.Kind != DropItem {
		return o.Kind.String()
	}
	return fmt.Sprintf("%d:%d x%d", o.Item.ID, o.Item.Data, o.Item.Amount)
}

var (
	emptyDrop          = DropOutcome{Kind: DropEmpty}
	indestructibleDrop = DropOutcome{Kind: DropIndestructible}
)

func itemDrop(id, amount, data int) DropOutcome {
	return DropOutcome{Kind: DropItem, Item: ItemStack{ID: id, Amount: amount, Data: data}}
}

// dropRule вычисляет выпадение по значению данных и источнику случайности
type dropRule func(data int, rnd Source) DropOutcome

type dropTable struct {
	nonData map[BlockID]dropRule
	data    map[uint32]dropRule
}

// Правила, из которых собирается таблица

func nothing() dropRule {
	return func(int, Source) DropOutcome { return emptyDrop }
}

func indestructible() dropRule {
	return func(int, Source) DropOutcome { return indestructibleDrop }
}

// fixed выпадает один и тот же предмет с нулевыми данными
func fixed[T BlockID | ItemID](id T, amount int) dropRule {
	return func(int, Source) DropOutcome { return itemDrop(int(id), amount, 0) }
}

// keepData выпадает предмет с данными разрушенного блока
func keepData[T BlockID | ItemID](id T, amount int) dropRule {
	return func(data int, _ Source) DropOutcome { return itemDrop(int(id), amount, data&0xf) }
}

// between выпадает от lo до hi единиц предмета включительно
func between[T BlockID | ItemID](id T, lo, hi, itemData int) dropRule {
	return func(_ int, rnd Source) DropOutcome {
		return itemDrop(int(id), lo+rnd.IntN(hi-lo+1), itemData)
	}
}

// oneIn с вероятностью 1/n применяет hit, иначе miss
func oneIn(n int, hit, miss dropRule) dropRule {
	return func(data int, rnd Source) DropOutcome {
		if rnd.IntN(n) == 0 {
			return hit(data, rnd)
		}
		return miss(data, rnd)
	}
}

// leafDrop: 5% шанс саженца той же породы (младшие два бита данных)
func leafDrop() dropRule {
	return func(data int, rnd Source) DropOutcome {
		if rnd.IntN(20) == 0 {
			return itemDrop(int(SaplingBlockID), 1, data&0x3)
		}
		return emptyDrop
	}
}

// mushroomCapDrop: 10% два гриба, 10% один, иначе ничего
func mushroomCapDrop(mushroom BlockID) dropRule {
	return func(_ int, rnd Source) DropOutcome {
		switch rnd.IntN(10) {
		case 0:
			return itemDrop(int(mushroom), 2, 0)
		case 1:
			return itemDrop(int(mushroom), 1, 0)
		default:
			return emptyDrop
		}
	}
}

// CropMatureData: значение данных полностью выросшей культуры
const CropMatureData = 7

// cropDrop сравнивает данные целиком: 23 или -9 не считаются зрелой культурой
func cropDrop() dropRule {
	return func(data int, _ Source) DropOutcome {
		if data == CropMatureData {
			return itemDrop(int(WheatItemID), 1, 0)
		}
		return itemDrop(int(SeedsItemID), 1, 0)
	}
}

// vanishingBlocks исчезают без выпадения при любом значении данных
var vanishingBlocks = []BlockID{
	AirBlockID,
	WaterBlockID,
	StationaryWaterBlockID,
	LavaBlockID,
	StationaryLavaBlockID,
	GlassBlockID,
	PistonExtensionBlockID,
	BookcaseBlockID,
	FireBlockID,
	MobSpawnerBlockID,
	SnowBlockID,
	IceBlockID,
	PortalBlockID,
	LockedChestBlockID,
	SilverfishBlockID,
	VineBlockID,
	EndPortalBlockID,
	EndPortalFrameBlockID,
}

func buildDropTable() dropTable {
	t := dropTable{
		nonData: map[BlockID]dropRule{
			BedrockBlockID: indestructible(),

			StoneBlockID:               fixed(CobblestoneBlockID, 1),
			GrassBlockID:               fixed(DirtBlockID, 1),
			GravelBlockID:              oneIn(10, fixed(FlintItemID, 1), fixed(GravelBlockID, 1)),
			CoalOreBlockID:             fixed(CoalItemID, 1),
			LeavesBlockID:              leafDrop(),
			LapisLazuliOreBlockID:      between(InkSackItemID, 4, 8, LapisDyeData),
			BedBlockID:                 fixed(BedItemID, 1),
			LongGrassBlockID:           oneIn(8, fixed(SeedsItemID, 1), nothing()),
			DoubleStepBlockID:          keepData(StepBlockID, 2),
			WoodenStairsBlockID:        fixed(WoodBlockID, 1),
			RedstoneWireBlockID:        fixed(RedstoneDustItemID, 1),
			DiamondOreBlockID:          fixed(DiamondItemID, 1),
			CropsBlockID:               cropDrop(),
			SoilBlockID:                fixed(DirtBlockID, 1),
			BurningFurnaceBlockID:      fixed(FurnaceBlockID, 1),
			SignPostBlockID:            fixed(SignItemID, 1),
			WoodenDoorBlockID:          fixed(WoodenDoorItemID, 1),
			CobblestoneStairsBlockID:   fixed(CobblestoneBlockID, 1),
			WallSignBlockID:            fixed(SignItemID, 1),
			IronDoorBlockID:            fixed(IronDoorItemID, 1),
			RedstoneOreBlockID:         between(RedstoneDustItemID, 4, 5, 0),
			GlowingRedstoneOreBlockID:  between(RedstoneDustItemID, 4, 5, 0),
			RedstoneTorchOffBlockID:    fixed(RedstoneTorchOnBlockID, 1),
			ClayBlockID:                fixed(ClayBallItemID, 4),
			ReedBlockID:                fixed(SugarCaneItemID, 1),
			LightstoneBlockID:          between(LightstoneDustItemID, 2, 4, 0),
			RedstoneRepeaterOffBlockID: fixed(RedstoneRepeaterItemID, 1),
			RedstoneRepeaterOnBlockID:  fixed(RedstoneRepeaterItemID, 1),
			BrownMushroomCapBlockID:    mushroomCapDrop(BrownMushroomBlockID),
			RedMushroomCapBlockID:      mushroomCapDrop(RedMushroomBlockID),
			MelonBlockID:               between(MelonItemID, 3, 7, 0),
			PumpkinStemBlockID:         fixed(PumpkinSeedsItemID, 1),
			MelonStemBlockID:           fixed(MelonSeedsItemID, 1),
			BrickStairsBlockID:         fixed(BrickBlockID, 1),
			StoneBrickStairsBlockID:    fixed(StoneBrickBlockID, 1),
			MyceliumBlockID:            fixed(DirtBlockID, 1),
			LilyPadBlockID:             fixed(LilyPadBlockID, 1),
			NetherBrickStairsBlockID:   fixed(NetherBrickBlockID, 1),
			NetherWartBlockID:          between(NetherWartSeedItemID, 1, 3, 0),
			BrewingStandBlockID:        fixed(BrewingStandItemID, 1),
			CauldronBlockID:            fixed(CauldronItemID, 1),
		},
		data: make(map[uint32]dropRule),
	}

	for _, id := range vanishingBlocks {
		t.nonData[id] = nothing()
	}

	return t
}

// Drop возвращает результат разрушения блока id со значением данных data.
// Функция тотальна: правило без данных, затем правило для пары
// (id, data), иначе блок выпадает сам собой в одном экземпляре.
// Для отрицательных идентификаторов возвращается DropEmpty.
func (r *Registry) Drop(id, data int) DropOutcome {
	if id < 0 {
		return emptyDrop
	}
	bid, ok := knownID(id)
	if !ok {
		return itemDrop(id, 1, data&0xf)
	}
	if rule, ok := r.drops.nonData[bid]; ok {
		return rule(data, r.random)
	}
	if rule, ok := r.drops.data[typeDataKey(bid, data)]; ok {
		return rule(data, r.random)
	}
	return itemDrop(id, 1, data&0xf)
}

// DropFor разрешает выпадение через общий реестр
func DropFor(id, data int) DropOutcome {
	return Default().Drop(id, data)
}
