package petdb

// pets is the embedded base table, grounded the same way the teacher repo
// grounds internal/game/weapons.go's Weapons map: a literal, hand-curated
// table checked into the binary rather than loaded from a database server.
// Names, triggers and stats for the pool exercised by the worked scenarios
// (Ant, Hedgehog, Blowfish, Deer, Fly, ZombieFly, Shark, Scorpion, Gorilla,
// Seagull, Parrot, Leech) are taken from the original project's pet
// constructors; the remaining entries round the tier-1/2 pool out to a
// credible production table.
var pets = map[string]PetRecord{
	"Ant":         {Name: "Ant", Tier: 1, Attack: 2, Health: 1, Pack: PackTurtle, EffectTrigger: "Faint", Effect: "grants a random friend +attack/+health", EffectAttack: 1, EffectHealth: 1, NTriggers: 1},
	"Beaver":      {Name: "Beaver", Tier: 1, Attack: 2, Health: 2, Pack: PackTurtle, EffectTrigger: "Sold", Effect: "gives two random friends +health", EffectHealth: 1, NTriggers: 2},
	"Cricket":     {Name: "Cricket", Tier: 1, Attack: 1, Health: 2, Pack: PackTurtle, EffectTrigger: "Faint", Effect: "summons a Zombie Cricket", NTriggers: 1, TempEffect: true},
	"Duck":        {Name: "Duck", Tier: 1, Attack: 1, Health: 2, Pack: PackTurtle, EffectTrigger: "Sold", Effect: "gives shop food +health"},
	"Fish":        {Name: "Fish", Tier: 1, Attack: 2, Health: 3, Pack: PackTurtle, EffectTrigger: "LevelUp", Effect: "gives all friends +attack/+health", EffectAttack: 1, EffectHealth: 1},
	"Horse":       {Name: "Horse", Tier: 1, Attack: 2, Health: 1, Pack: PackTurtle, EffectTrigger: "FriendSummoned", Effect: "gives the summoned friend +attack", EffectAttack: 1, NTriggers: 1, TempEffect: true},
	"Mosquito":    {Name: "Mosquito", Tier: 1, Attack: 2, Health: 2, Pack: PackTurtle, EffectTrigger: "StartOfBattle", Effect: "deals 1 damage to a random enemy", NTriggers: 1},
	"Otter":       {Name: "Otter", Tier: 1, Attack: 1, Health: 2, Pack: PackTurtle, EffectTrigger: "Bought", Effect: "gives a random friend +attack/+health", EffectAttack: 1, EffectHealth: 1},
	"Pig":         {Name: "Pig", Tier: 1, Attack: 3, Health: 1, Pack: PackTurtle, EffectTrigger: "Sold", Effect: "gains extra gold"},
	"Sloth":       {Name: "Sloth", Tier: 1, Attack: 1, Health: 1, Pack: PackTurtle, Effect: "no effect"},
	"Crab":        {Name: "Crab", Tier: 2, Attack: 1, Health: 1, Pack: PackTurtle, EffectTrigger: "Bought", Effect: "copies the highest-health friend's health"},
	"Dodo":        {Name: "Dodo", Tier: 2, Attack: 3, Health: 1, Pack: PackTurtle, EffectTrigger: "StartOfBattle", Effect: "gives the pet ahead attack based on its own attack", EffectAttack: 1},
	"Elephant":    {Name: "Elephant", Tier: 2, Attack: 3, Health: 5, Pack: PackTurtle, EffectTrigger: "Attack", Effect: "deals damage to pets behind", EffectAttack: 1, NTriggers: 1},
	"Flamingo":    {Name: "Flamingo", Tier: 2, Attack: 3, Health: 1, Pack: PackTurtle, EffectTrigger: "Faint", Effect: "gives two pets behind +attack/+health", EffectAttack: 1, EffectHealth: 1, NTriggers: 1},
	"Hedgehog":    {Name: "Hedgehog", Tier: 2, Attack: 3, Health: 2, Pack: PackTurtle, EffectTrigger: "Faint", Effect: "deals damage equal to its attack to all other pets", NTriggers: 1},
	"Peacock":     {Name: "Peacock", Tier: 2, Attack: 2, Health: 5, Pack: PackTurtle, EffectTrigger: "Hurt", Effect: "gains attack", EffectAttack: 2, NTriggers: 1},
	"Rat":         {Name: "Rat", Tier: 2, Attack: 4, Health: 5, Pack: PackTurtle, EffectTrigger: "Faint", Effect: "summons dirty rats on the enemy team", NTriggers: 1},
	"Shrimp":      {Name: "Shrimp", Tier: 2, Attack: 2, Health: 3, Pack: PackTurtle, EffectTrigger: "Sold", Effect: "gives a random friend +health", EffectHealth: 1},
	"Spider":      {Name: "Spider", Tier: 2, Attack: 2, Health: 2, Pack: PackTurtle, EffectTrigger: "Faint", Effect: "summons a tier-appropriate pet with its stats"},
	"Swan":        {Name: "Swan", Tier: 2, Attack: 1, Health: 3, Pack: PackTurtle, Effect: "gains extra gold each turn"},
	"Blowfish":    {Name: "Blowfish", Tier: 3, Attack: 3, Health: 50, Pack: PackTurtle, EffectTrigger: "Hurt", Effect: "deals damage to a random enemy", EffectAttack: 2, NTriggers: 1},
	"Camel":       {Name: "Camel", Tier: 3, Attack: 2, Health: 5, Pack: PackTurtle, EffectTrigger: "Hurt", Effect: "gives a friend behind +attack/+health", EffectAttack: 1, EffectHealth: 2, NTriggers: 1},
	"Giraffe":     {Name: "Giraffe", Tier: 3, Attack: 2, Health: 5, Pack: PackTurtle, EffectTrigger: "EndTurn", Effect: "gives friends ahead +attack/+health", EffectAttack: 1, EffectHealth: 1, NTriggers: 2},
	"Kangaroo":    {Name: "Kangaroo", Tier: 3, Attack: 1, Health: 2, Pack: PackTurtle, EffectTrigger: "FriendAttacks", Effect: "gains attack/health when the friend ahead attacks", EffectAttack: 2, EffectHealth: 2, NTriggers: 1},
	"Ox":          {Name: "Ox", Tier: 3, Attack: 1, Health: 3, Pack: PackTurtle, EffectTrigger: "FriendFaints", Effect: "gains attack and melee, knockout", EffectAttack: 2, NTriggers: 1},
	"Sheep":       {Name: "Sheep", Tier: 3, Attack: 2, Health: 2, Pack: PackTurtle, EffectTrigger: "Faint", Effect: "summons two ram tokens", NTriggers: 1},
	"Deer":        {Name: "Deer", Tier: 4, Attack: 1, Health: 1, Pack: PackTurtle, EffectTrigger: "Faint", Effect: "summons a Bus with its stats", NTriggers: 1, TempEffect: true},
	"Hippo":       {Name: "Hippo", Tier: 4, Attack: 4, Health: 7, Pack: PackTurtle, Effect: "no innate effect"},
	"Rooster":     {Name: "Rooster", Tier: 4, Attack: 3, Health: 2, Pack: PackTurtle, EffectTrigger: "Faint", Effect: "summons chicks scaled from its own attack", EffectAttack: 1, NTriggers: 1},
	"Scorpion":    {Name: "Scorpion", Tier: 4, Attack: 1, Health: 1, Pack: PackTurtle, Effect: "holds a Peanut"},
	"Fly":         {Name: "Fly", Tier: 5, Attack: 5, Health: 5, Pack: PackTurtle, EffectTrigger: "AnyFaint", Effect: "summons a Zombie Fly at the fainted pet's position", NTriggers: 5},
	"Shark":       {Name: "Shark", Tier: 5, Attack: 8, Health: 6, Pack: PackTurtle, EffectTrigger: "Attack", Effect: "gains attack/health after attacking", EffectAttack: 2, EffectHealth: 2, NTriggers: 1},
	"Gorilla":     {Name: "Gorilla", Tier: 5, Attack: 6, Health: 9, Pack: PackTurtle, EffectTrigger: "Hurt", Effect: "gains a shield absorbing the next hit", NTriggers: 1},
	"Leopard":     {Name: "Leopard", Tier: 5, Attack: 10, Health: 4, Pack: PackTurtle, EffectTrigger: "StartOfBattle", Effect: "deals damage to a random enemy equal to its own attack", NTriggers: 1},
	"Mammoth":     {Name: "Mammoth", Tier: 5, Attack: 3, Health: 10, Pack: PackTurtle, EffectTrigger: "Faint", Effect: "gives all friends +attack/+health and removes their effects", EffectAttack: 2, EffectHealth: 2, NTriggers: 1},
	"Snake":       {Name: "Snake", Tier: 5, Attack: 6, Health: 6, Pack: PackTurtle, EffectTrigger: "FriendAttacks", Effect: "deals damage to the attacked enemy", EffectAttack: 5, NTriggers: 1},
	"Cow":         {Name: "Cow", Tier: 6, Attack: 4, Health: 6, Pack: PackTurtle, EffectTrigger: "Sold", Effect: "shop milk gives +attack/+health", EffectAttack: 1, EffectHealth: 1},
	"Monkey":      {Name: "Monkey", Tier: 6, Attack: 2, Health: 2, Pack: PackTurtle, EffectTrigger: "EndTurn", Effect: "gives the frontmost friend +attack/+health", EffectAttack: 2, EffectHealth: 2},
	"Seagull":     {Name: "Seagull", Tier: 1, Attack: 3, Health: 2, Pack: PackPuppy, EffectTrigger: "Bought", Effect: "eats shop food and gains its stats"},
	"Parrot":      {Name: "Parrot", Tier: 3, Attack: 3, Health: 2, Pack: PackPuppy, EffectTrigger: "EndTurn", Effect: "copies the ability of the friend behind it"},
	"Leech":       {Name: "Leech", Tier: 4, Attack: 1, Health: 7, Pack: PackPuppy, EffectTrigger: "Hurt", Effect: "reduces damage taken and heals the attacker's team", NTriggers: 1},
	"ZombieFly":   {Name: "ZombieFly", Tier: 5, Attack: 5, Health: 1, Pack: PackTurtle, Effect: "summoned token, no innate effect", TempEffect: true},
	"Bus":         {Name: "Bus", Tier: 4, Attack: 5, Health: 5, Pack: PackTurtle, EffectTrigger: "Faint", Effect: "summons its held pet at its stats", TempEffect: true},
	"ZombieCricket": {Name: "ZombieCricket", Tier: 1, Attack: 1, Health: 1, Pack: PackTurtle, Effect: "summoned token, no innate effect", TempEffect: true},
	"DirtyRat":    {Name: "DirtyRat", Tier: 1, Attack: 1, Health: 1, Pack: PackTurtle, Effect: "summoned token, no innate effect", TempEffect: true},
	"Ram":         {Name: "Ram", Tier: 3, Attack: 2, Health: 2, Pack: PackTurtle, Effect: "summoned token, no innate effect", TempEffect: true},
	"Chick":       {Name: "Chick", Tier: 4, Attack: 1, Health: 1, Pack: PackTurtle, Effect: "summoned token, no innate effect", TempEffect: true},
}

// foods is the embedded food table. Cost and holdability are grounded in
// db/record.rs::FoodRecord's field set; Peanut/Coconut/Melon/Mushroom are
// the exact items exercised by the worked scenarios.
var foods = map[string]FoodRecord{
	"Apple":    {Name: "Apple", Tier: 1, Effect: "+1/+1 to target", Pack: PackTurtle, NTargets: 1, EffectAttack: 1, EffectHealth: 1, Cost: 3},
	"Honey":    {Name: "Honey", Tier: 1, Effect: "spawns a bee on faint", Pack: PackTurtle, Holdable: true, SingleUse: true, NTargets: 1, Cost: 3},
	"Garlic":   {Name: "Garlic", Tier: 2, Effect: "reduces damage taken by 2", Pack: PackTurtle, Holdable: true, NTargets: 1, Cost: 3},
	"Salad Bowl": {Name: "Salad Bowl", Tier: 3, Effect: "+1/+1 to two random friends", Pack: PackTurtle, Random: true, NTargets: 2, EffectAttack: 1, EffectHealth: 1, Cost: 3},
	"Canned Food": {Name: "Canned Food", Tier: 4, Effect: "+attack/+health to all future shop pets this turn", Pack: PackTurtle, TurnEffect: true, NTargets: 0, EffectAttack: 1, EffectHealth: 1, Cost: 3},
	"Pear":     {Name: "Pear", Tier: 4, Effect: "+2/+2 to target", Pack: PackTurtle, NTargets: 1, EffectAttack: 2, EffectHealth: 2, Cost: 3},
	"Chili":    {Name: "Chili", Tier: 5, Effect: "splash damage to the row behind the target", Pack: PackTurtle, Holdable: true, NTargets: 1, Cost: 3},
	"Mushroom": {Name: "Mushroom", Tier: 5, Effect: "pet is resummoned at 1/1 on faint", Pack: PackTurtle, Holdable: true, SingleUse: true, NTargets: 1, Cost: 3},
	"Peanut":   {Name: "Peanut", Tier: 6, Effect: "instantly kills target if it takes damage", Pack: PackTurtle, Holdable: true, SingleUse: true, NTargets: 1, Cost: 3},
	"Melon":    {Name: "Melon", Tier: 6, Effect: "absorbs the next 20 damage", Pack: PackTurtle, Holdable: true, SingleUse: true, NTargets: 1, Cost: 3},
	"Coconut":  {Name: "Coconut", Tier: 3, Effect: "becomes invulnerable to the next hit", Pack: PackPuppy, Holdable: true, SingleUse: true, NTargets: 1, Cost: 3},
	"Milk":     {Name: "Milk", Tier: 1, Effect: "+1/+1, food grants extra stats if a Cow is present", Pack: PackTurtle, NTargets: 1, EffectAttack: 1, EffectHealth: 1, Cost: 3},
}

// toys is the embedded hard-mode toy table (Turtle Pack expansion, see
// lib/tests/test_toy_t1.rs upstream for Balloon/Tennis Ball semantics).
var toys = map[string]ToyRecord{
	"Balloon":      {Name: "Balloon", Tier: 1, Effect: "gives a random friend a Balloon armor shield at the start of every turn", Cost: 3, Durable: true},
	"Tennis Ball":  {Name: "Tennis Ball", Tier: 1, Effect: "launches a ball at the start of battle dealing 1 damage to a random enemy", Cost: 3, Durable: false},
	"Garlic Press": {Name: "Garlic Press", Tier: 2, Effect: "gives the two leftmost friends permanent Garlic armor", Cost: 5, Durable: true},
	"Radio":        {Name: "Radio", Tier: 2, Effect: "gives all friends +1 attack at the start of every turn", Cost: 5, Durable: true},
}
