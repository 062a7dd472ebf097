package block

// catalogue: встроенный каталог типов блоков. Псевдонимы должны быть
// уникальны во всём каталоге, это проверяется при сборке реестра.
var catalogue = []definition{
	def(AirBlockID, "Air", "air"),
	def(StoneBlockID, "Stone", "stone", "rock"),
	def(GrassBlockID, "Grass", "grass"),
	def(DirtBlockID, "Dirt", "dirt"),
	def(CobblestoneBlockID, "Cobblestone", "cobblestone", "cobble"),
	def(WoodBlockID, "Wood", "wood", "woodplank", "plank", "woodplanks", "planks"),
	def(SaplingBlockID, "Sapling", "sapling", "seedling"),
	def(BedrockBlockID, "Bedrock", "adminium", "bedrock"),
	def(WaterBlockID, "Water", "watermoving", "movingwater", "flowingwater", "waterflowing"),
	def(StationaryWaterBlockID, "Water (stationary)", "water", "waterstationary", "stationarywater", "stillwater"),
	def(LavaBlockID, "Lava", "lavamoving", "movinglava", "flowinglava", "lavaflowing"),
	def(StationaryLavaBlockID, "Lava (stationary)", "lava", "lavastationary", "stationarylava", "stilllava"),
	def(SandBlockID, "Sand", "sand"),
	def(GravelBlockID, "Gravel", "gravel"),
	def(GoldOreBlockID, "Gold ore", "goldore"),
	def(IronOreBlockID, "Iron ore", "ironore"),
	def(CoalOreBlockID, "Coal ore", "coalore"),
	def(LogBlockID, "Log", "log", "tree", "pine", "oak", "birch", "redwood"),
	def(LeavesBlockID, "Leaves", "leaves", "leaf"),
	def(SpongeBlockID, "Sponge", "sponge"),
	def(GlassBlockID, "Glass", "glass"),
	def(LapisLazuliOreBlockID, "Lapis lazuli ore", "lapislazuliore", "blueore", "lapisore"),
	def(LapisLazuliBlockID, "Lapis lazuli", "lapislazuli", "lapislazuliblock", "bluerock"),
	def(DispenserBlockID, "Dispenser", "dispenser"),
	def(SandstoneBlockID, "Sandstone", "sandstone"),
	def(NoteBlockID, "Note block", "musicblock", "noteblock", "note", "music", "instrument"),
	def(BedBlockID, "Bed", "bed"),
	def(PoweredRailBlockID, "Powered Rail", "poweredrail", "boosterrail", "poweredtrack", "boostertrack", "booster"),
	def(DetectorRailBlockID, "Detector Rail", "detectorrail", "detector"),
	def(PistonStickyBaseBlockID, "Sticky Piston", "stickypiston"),
	def(WebBlockID, "Web", "web", "spiderweb"),
	def(LongGrassBlockID, "Long grass", "longgrass", "tallgrass"),
	def(DeadBushBlockID, "Shrub", "deadbush", "shrub", "deadshrub", "tumbleweed"),
	def(PistonBaseBlockID, "Piston", "piston"),
	def(PistonExtensionBlockID, "Piston extension", "pistonextendsion", "pistonhead"),
	def(ClothBlockID, "Wool", "cloth", "wool"),
	def(PistonMovingPieceBlockID, "Piston moving piece", "movingpiston"),
	def(YellowFlowerBlockID, "Yellow flower", "yellowflower", "flower"),
	def(RedFlowerBlockID, "Red rose", "redflower", "redrose", "rose"),
	def(BrownMushroomBlockID, "Brown mushroom", "brownmushroom", "mushroom"),
	def(RedMushroomBlockID, "Red mushroom", "redmushroom"),
	def(GoldBlockID, "Gold block", "gold", "goldblock"),
	def(IronBlockID, "Iron block", "iron", "ironblock"),
	def(DoubleStepBlockID, "Double step", "doubleslab", "doublestoneslab", "doublestep"),
	def(StepBlockID, "Step", "slab", "stoneslab", "step", "halfstep"),
	def(BrickBlockID, "Brick", "brick", "brickblock"),
	def(TNTBlockID, "TNT", "tnt", "c4", "explosive"),
	def(BookcaseBlockID, "Bookcase", "bookshelf", "bookshelves", "bookcase", "bookcases"),
	def(MossyCobblestoneBlockID, "Cobblestone (mossy)", "mossycobblestone", "mossstone", "mossystone", "mosscobble", "mossycobble", "moss", "mossy", "sossymobblecone"),
	def(ObsidianBlockID, "Obsidian", "obsidian"),
	def(TorchBlockID, "Torch", "torch", "light", "candle"),
	def(FireBlockID, "Fire", "fire", "flame", "flames"),
	def(MobSpawnerBlockID, "Mob spawner", "mobspawner", "spawner"),
	def(WoodenStairsBlockID, "Wooden stairs", "woodstair", "woodstairs", "woodenstair", "woodenstairs"),
	def(ChestBlockID, "Chest", "chest", "storage", "storagechest"),
	def(RedstoneWireBlockID, "Redstone wire", "redstone", "redstoneblock"),
	def(DiamondOreBlockID, "Diamond ore", "diamondore"),
	def(DiamondBlockID, "Diamond block", "diamond", "diamondblock"),
	def(WorkbenchBlockID, "Workbench", "workbench", "table", "craftingtable", "crafting"),
	def(CropsBlockID, "Crops", "crops", "crop", "plant", "plants"),
	def(SoilBlockID, "Soil", "soil", "farmland"),
	def(FurnaceBlockID, "Furnace", "furnace"),
	def(BurningFurnaceBlockID, "Furnace (burning)", "burningfurnace", "litfurnace"),
	def(SignPostBlockID, "Sign post", "sign", "signpost"),
	def(WoodenDoorBlockID, "Wooden door", "wooddoor", "woodendoor", "door"),
	def(LadderBlockID, "Ladder", "ladder"),
	def(MinecartTracksBlockID, "Minecart tracks", "track", "tracks", "minecrattrack", "minecarttracks", "rails", "rail"),
	def(CobblestoneStairsBlockID, "Cobblestone stairs", "cobblestonestair", "cobblestonestairs", "cobblestair", "cobblestairs"),
	def(WallSignBlockID, "Wall sign", "wallsign"),
	def(LeverBlockID, "Lever", "lever", "switch", "stonelever", "stoneswitch"),
	def(StonePressurePlateBlockID, "Stone pressure plate", "stonepressureplate", "stoneplate"),
	def(IronDoorBlockID, "Iron Door", "irondoor"),
	def(WoodenPressurePlateBlockID, "Wooden pressure plate", "woodpressureplate", "woodplate", "woodenpressureplate", "woodenplate", "plate", "pressureplate"),
	def(RedstoneOreBlockID, "Redstone ore", "redstoneore"),
	def(GlowingRedstoneOreBlockID, "Glowing redstone ore", "glowingredstoneore"),
	def(RedstoneTorchOffBlockID, "Redstone torch (off)", "redstonetorchoff", "rstorchoff"),
	def(RedstoneTorchOnBlockID, "Redstone torch (on)", "redstonetorch", "redstonetorchon", "rstorchon", "redtorch"),
	def(StoneButtonBlockID, "Stone Button", "stonebutton", "button"),
	def(SnowBlockID, "Snow", "snow"),
	def(IceBlockID, "Ice", "ice"),
	def(SnowBlockBlockID, "Snow block", "snowblock"),
	def(CactusBlockID, "Cactus", "cactus", "cacti"),
	def(ClayBlockID, "Clay", "clay"),
	// "vine" и "vines" закреплены за лозой (VineBlockID)
	def(ReedBlockID, "Reed", "reed", "cane", "sugarcane", "sugarcanes"),
	def(JukeboxBlockID, "Jukebox", "jukebox", "stereo", "recordplayer"),
	def(FenceBlockID, "Fence", "fence"),
	def(PumpkinBlockID, "Pumpkin", "pumpkin"),
	def(NetherrackBlockID, "Netherrack", "redmossycobblestone", "redcobblestone", "redmosstone", "redcobble", "netherstone", "netherrack", "nether", "hellstone"),
	def(SlowSandBlockID, "Soul sand", "slowmud", "mud", "soulsand", "hellmud"),
	def(LightstoneBlockID, "Glowstone", "brittlegold", "glowstone", "lightstone", "brimstone", "australium"),
	def(PortalBlockID, "Portal", "portal"),
	def(JackOLanternBlockID, "Pumpkin (on)", "pumpkinlighted", "pumpkinon", "litpumpkin", "jackolantern"),
	def(CakeBlockID, "Cake", "cake", "cakeblock"),
	def(RedstoneRepeaterOffBlockID, "Redstone repeater (off)", "diodeoff", "redstonerepeater", "repeateroff", "delayeroff"),
	def(RedstoneRepeaterOnBlockID, "Redstone repeater (on)", "diodeon", "redstonerepeateron", "repeateron", "delayeron"),
	def(LockedChestBlockID, "Locked chest", "lockedchest", "steveco", "supplycrate", "valveneedstoworkonep3nottf2kthx"),
	def(TrapDoorBlockID, "Trap door", "trapdoor", "hatch", "floordoor"),
	def(SilverfishBlockID, "Silverfish block", "silverfish", "silver"),
	def(StoneBrickBlockID, "Stone brick", "stonebrick", "sbrick", "smoothstonebrick"),
	def(RedMushroomCapBlockID, "Red mushroom cap", "giantmushroomred", "redgiantmushroom", "redmushroomcap"),
	def(BrownMushroomCapBlockID, "Brown mushroom cap", "giantmushroombrown", "browngiantmushoom", "brownmushroomcap"),
	def(IronBarsBlockID, "Iron bars", "ironbars", "ironfence"),
	def(GlassPaneBlockID, "Glass pane", "window", "glasspane", "glasswindow"),
	def(MelonBlockID, "Melon (block)", "melonblock"),
	def(PumpkinStemBlockID, "Pumpkin stem", "pumpkinstem"),
	def(MelonStemBlockID, "Melon stem", "melonstem"),
	def(VineBlockID, "Vine", "vine", "vines", "creepers"),
	def(FenceGateBlockID, "Fence gate", "fencegate", "gate"),
	def(BrickStairsBlockID, "Brick stairs", "brickstairs", "bricksteps"),
	def(StoneBrickStairsBlockID, "Stone brick stairs", "stonebrickstairs", "smoothstonebrickstairs"),
	def(MyceliumBlockID, "Mycelium", "fungus", "mycel"),
	def(LilyPadBlockID, "Lily pad", "lilypad", "waterlily"),
	def(NetherBrickBlockID, "Nether brick", "netherbrick"),
	def(NetherBrickFenceBlockID, "Nether brick fence", "netherbrickfence", "netherfence"),
	def(NetherBrickStairsBlockID, "Nether brick stairs", "netherbrickstairs", "netherbricksteps", "netherstairs", "nethersteps"),
	def(NetherWartBlockID, "Nether wart", "netherwart", "netherstalk"),
	def(EnchantmentTableBlockID, "Enchantment table", "enchantmenttable", "enchanttable"),
	def(BrewingStandBlockID, "Brewing Stand", "brewingstand"),
	def(CauldronBlockID, "Cauldron", "cauldron"),
	def(EndPortalBlockID, "End Portal", "endportal", "blackstuff", "airportal", "weirdblackstuff"),
	def(EndPortalFrameBlockID, "End Portal Frame", "endportalframe", "airportalframe", "crystalblock"),
	def(EndStoneBlockID, "End Stone", "endstone", "enderstone", "endersand"),
	def(DragonEggBlockID, "Dragon Egg", "dragonegg", "dragons"),
	def(RedstoneLampOffBlockID, "Redstone lamp (off)", "redstonelamp", "redstonelampoff", "rslamp", "rslampoff", "rsglow", "rsglowoff"),
	def(RedstoneLampOnBlockID, "Redstone lamp (on)", "redstonelampon", "rslampon", "rsglowon"),
	def(DoubleWoodenStepBlockID, "Double wood step", "doublewoodslab", "doublewoodstep"),
	def(WoodenStepBlockID, "Wood step", "woodenslab", "woodslab", "woodstep", "woodhalfstep"),
	def(CocoaPlantBlockID, "Cocoa plant", "cocoplant", "cocoaplant"),
	def(SandstoneStairsBlockID, "Sandstone stairs", "sandstairs", "sandstonestairs"),
	def(EmeraldOreBlockID, "Emerald ore", "emeraldore"),
	def(EnderChestBlockID, "Ender chest", "enderchest"),
	def(TripwireHookBlockID, "Tripwire hook", "tripwirehook"),
	def(TripwireBlockID, "Tripwire", "tripwire", "string"),
	def(EmeraldBlockID, "Emerald block", "emeraldblock", "emerald"),
	def(SpruceWoodStairsBlockID, "Spruce wood stairs", "sprucestairs", "sprucewoodstairs"),
	def(BirchWoodStairsBlockID, "Birch wood stairs", "birchstairs", "birchwoodstairs"),
	def(JungleWoodStairsBlockID, "Jungle wood stairs", "junglestairs", "junglewoodstairs"),
	def(CommandBlockID, "Command block", "commandblock", "cmdblock", "command", "cmd"),
	def(BeaconBlockID, "Beacon", "beacon", "beaconblock"),
	def(CobblestoneWallBlockID, "Cobblestone wall", "cobblestonewall", "cobblewall"),
	def(FlowerPotBlockID, "Flower pot", "flowerpot", "plantpot", "pot"),
	def(CarrotsBlockID, "Carrots", "carrots", "carrotsplant", "carrotsblock"),
	def(PotatoesBlockID, "Potatoes", "patatoes", "potatoesblock"),
	def(WoodenButtonBlockID, "Wooden button", "woodbutton", "woodenbutton"),
	def(HeadBlockID, "Head", "head", "headmount", "mount"),
	def(AnvilBlockID, "Anvil", "anvil", "blacksmith"),
}
