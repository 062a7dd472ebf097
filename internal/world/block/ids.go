package block

// BlockID представляет числовой идентификатор типа блока
type BlockID uint16

// MaxBlockID: наибольший допустимый идентификатор блока (12 бит)
const MaxBlockID = 4095

// Константы ID блоков
const (
	AirBlockID                 BlockID = 0
	StoneBlockID               BlockID = 1
	GrassBlockID               BlockID = 2
	DirtBlockID                BlockID = 3
	CobblestoneBlockID         BlockID = 4
	WoodBlockID                BlockID = 5
	SaplingBlockID             BlockID = 6
	BedrockBlockID             BlockID = 7
	WaterBlockID               BlockID = 8
	StationaryWaterBlockID     BlockID = 9
	LavaBlockID                BlockID = 10
	StationaryLavaBlockID      BlockID = 11
	SandBlockID                BlockID = 12
	GravelBlockID              BlockID = 13
	GoldOreBlockID             BlockID = 14
	IronOreBlockID             BlockID = 15
	CoalOreBlockID             BlockID = 16
	LogBlockID                 BlockID = 17
	LeavesBlockID              BlockID = 18
	SpongeBlockID              BlockID = 19
	GlassBlockID               BlockID = 20
	LapisLazuliOreBlockID      BlockID = 21
	LapisLazuliBlockID         BlockID = 22
	DispenserBlockID           BlockID = 23
	SandstoneBlockID           BlockID = 24
	NoteBlockID                BlockID = 25
	BedBlockID                 BlockID = 26
	PoweredRailBlockID         BlockID = 27
	DetectorRailBlockID        BlockID = 28
	PistonStickyBaseBlockID    BlockID = 29
	WebBlockID                 BlockID = 30
	LongGrassBlockID           BlockID = 31
	DeadBushBlockID            BlockID = 32
	PistonBaseBlockID          BlockID = 33
	PistonExtensionBlockID     BlockID = 34
	ClothBlockID               BlockID = 35
	PistonMovingPieceBlockID   BlockID = 36
	YellowFlowerBlockID        BlockID = 37
	RedFlowerBlockID           BlockID = 38
	BrownMushroomBlockID       BlockID = 39
	RedMushroomBlockID         BlockID = 40
	GoldBlockID                BlockID = 41
	IronBlockID                BlockID = 42
	DoubleStepBlockID          BlockID = 43
	StepBlockID                BlockID = 44
	BrickBlockID               BlockID = 45
	TNTBlockID                 BlockID = 46
	BookcaseBlockID            BlockID = 47
	MossyCobblestoneBlockID    BlockID = 48
	ObsidianBlockID            BlockID = 49
	TorchBlockID               BlockID = 50
	FireBlockID                BlockID = 51
	MobSpawnerBlockID          BlockID = 52
	WoodenStairsBlockID        BlockID = 53
	ChestBlockID               BlockID = 54
	RedstoneWireBlockID        BlockID = 55
	DiamondOreBlockID          BlockID = 56
	DiamondBlockID             BlockID = 57
	WorkbenchBlockID           BlockID = 58
	CropsBlockID               BlockID = 59
	SoilBlockID                BlockID = 60
	FurnaceBlockID             BlockID = 61
	BurningFurnaceBlockID      BlockID = 62
	SignPostBlockID            BlockID = 63
	WoodenDoorBlockID          BlockID = 64
	LadderBlockID              BlockID = 65
	MinecartTracksBlockID      BlockID = 66
	CobblestoneStairsBlockID   BlockID = 67
	WallSignBlockID            BlockID = 68
	LeverBlockID               BlockID = 69
	StonePressurePlateBlockID  BlockID = 70
	IronDoorBlockID            BlockID = 71
	WoodenPressurePlateBlockID BlockID = 72
	RedstoneOreBlockID         BlockID = 73
	GlowingRedstoneOreBlockID  BlockID = 74
	RedstoneTorchOffBlockID    BlockID = 75
	RedstoneTorchOnBlockID     BlockID = 76
	StoneButtonBlockID         BlockID = 77
	SnowBlockID                BlockID = 78
	IceBlockID                 BlockID = 79
	SnowBlockBlockID           BlockID = 80
	CactusBlockID              BlockID = 81
	ClayBlockID                BlockID = 82
	ReedBlockID                BlockID = 83
	JukeboxBlockID             BlockID = 84
	FenceBlockID               BlockID = 85
	PumpkinBlockID             BlockID = 86
	NetherrackBlockID          BlockID = 87
	SlowSandBlockID            BlockID = 88
	LightstoneBlockID          BlockID = 89
	PortalBlockID              BlockID = 90
	JackOLanternBlockID        BlockID = 91
	CakeBlockID                BlockID = 92
	RedstoneRepeaterOffBlockID BlockID = 93
	RedstoneRepeaterOnBlockID  BlockID = 94
	LockedChestBlockID         BlockID = 95
	TrapDoorBlockID            BlockID = 96
	SilverfishBlockID          BlockID = 97
	StoneBrickBlockID          BlockID = 98
	BrownMushroomCapBlockID    BlockID = 99
	RedMushroomCapBlockID      BlockID = 100
	IronBarsBlockID            BlockID = 101
	GlassPaneBlockID           BlockID = 102
	MelonBlockID               BlockID = 103
	PumpkinStemBlockID         BlockID = 104
	MelonStemBlockID           BlockID = 105
	VineBlockID                BlockID = 106
	FenceGateBlockID           BlockID = 107
	BrickStairsBlockID         BlockID = 108
	StoneBrickStairsBlockID    BlockID = 109
	MyceliumBlockID            BlockID = 110
	LilyPadBlockID             BlockID = 111
	NetherBrickBlockID         BlockID = 112
	NetherBrickFenceBlockID    BlockID = 113
	NetherBrickStairsBlockID   BlockID = 114
	NetherWartBlockID          BlockID = 115
	EnchantmentTableBlockID    BlockID = 116
	BrewingStandBlockID        BlockID = 117
	CauldronBlockID            BlockID = 118
	EndPortalBlockID           BlockID = 119
	EndPortalFrameBlockID      BlockID = 120
	EndStoneBlockID            BlockID = 121
	DragonEggBlockID           BlockID = 122
	RedstoneLampOffBlockID     BlockID = 123
	RedstoneLampOnBlockID      BlockID = 124
	DoubleWoodenStepBlockID    BlockID = 125
	WoodenStepBlockID          BlockID = 126
	CocoaPlantBlockID          BlockID = 127
	SandstoneStairsBlockID     BlockID = 128
	EmeraldOreBlockID          BlockID = 129
	EnderChestBlockID          BlockID = 130
	TripwireHookBlockID        BlockID = 131
	TripwireBlockID            BlockID = 132
	EmeraldBlockID             BlockID = 133
	SpruceWoodStairsBlockID    BlockID = 134
	BirchWoodStairsBlockID     BlockID = 135
	JungleWoodStairsBlockID    BlockID = 136
	CommandBlockID             BlockID = 137
	BeaconBlockID              BlockID = 138
	CobblestoneWallBlockID     BlockID = 139
	FlowerPotBlockID           BlockID = 140
	CarrotsBlockID             BlockID = 141
	PotatoesBlockID            BlockID = 142
	WoodenButtonBlockID        BlockID = 143
	HeadBlockID                BlockID = 144
	AnvilBlockID               BlockID = 145
)

// ItemID представляет идентификатор предмета (не блока)
type ItemID uint16

// Предметы, на которые ссылаются правила выпадения
const (
	CoalItemID             ItemID = 263
	DiamondItemID          ItemID = 264
	SeedsItemID            ItemID = 295
	WheatItemID            ItemID = 296
	FlintItemID            ItemID = 318
	SignItemID             ItemID = 323
	WoodenDoorItemID       ItemID = 324
	IronDoorItemID         ItemID = 330
	RedstoneDustItemID     ItemID = 331
	ClayBallItemID         ItemID = 337
	SugarCaneItemID        ItemID = 338
	LightstoneDustItemID   ItemID = 348
	InkSackItemID          ItemID = 351
	BedItemID              ItemID = 355
	RedstoneRepeaterItemID ItemID = 356
	MelonItemID            ItemID = 360
	PumpkinSeedsItemID     ItemID = 361
	MelonSeedsItemID       ItemID = 362
	NetherWartSeedItemID   ItemID = 372
	BrewingStandItemID     ItemID = 379
	CauldronItemID         ItemID = 380
)

// Значения данных предметов
const (
	// LapisDyeData: значение данных мешка чернил, соответствующее лазуриту
	LapisDyeData = 4
)
