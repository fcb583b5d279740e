// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package recipe

// Tag keys read from the tag bag.
const (
	fruit     = "fruit"
	monster   = "monster"
	sweetener = "sweetener"
	veggie    = "veggie"
	meat      = "meat"
	fish      = "fish"
	egg       = "egg"
	fat       = "fat"
	dairy     = "dairy"
	inedible  = "inedible"
	seed      = "seed"
	magic     = "magic"
	frozen    = "frozen"
)

// Ingredient groups that recipes count together.
var (
	anyAsparagus    = []string{"asparagus", "asparagus_cooked"}
	anyBanana       = []string{"cave_banana", "cave_banana_cooked"}
	anyBarnacle     = []string{"barnacle", "barnacle_cooked"}
	anyKelp         = []string{"kelp", "kelp_cooked", "kelp_dried"}
	anyForgetMe     = []string{"forgetmelots", "forgetmelots_dried"}
	anyWings        = []string{"butterflywings", "moonbutterflywings"}
	anyDragonfruit  = []string{"dragonfruit", "dragonfruit_cooked"}
	anyFig          = []string{"fig", "fig_cooked"}
	anyCorn         = []string{"corn", "corn_cooked"}
	anyFrogLegs     = []string{"froglegs", "froglegs_cooked"}
	anyAvocadoCacti = []string{"rock_avocado_fruit_ripe", "rock_avocado_fruit_ripe_cooked", "cactus_meat", "cactus_meat_cooked"}
	anyTrunk        = []string{"trunk_summer", "trunk_winter", "trunk_cooked"}
	anyLeafyMeat    = []string{"plantmeat", "plantmeat_cooked"}
	anyOnion        = []string{"onion", "onion_cooked"}
	anyWobster      = []string{"wobster_sheller_land", "wobster_sheller_land_cooked"}
	anyMandrake     = []string{"mandrake", "mandrake_cooked"}
	anyPotato       = []string{"potato", "potato_cooked"}
	anyGarlic       = []string{"garlic", "garlic_cooked"}
	anyPepper       = []string{"pepper", "pepper_cooked"}
	anyPumpkin      = []string{"pumpkin", "pumpkin_cooked"}
	anyTomato       = []string{"tomato", "tomato_cooked"}
	anyMoonCap      = []string{"moon_cap", "moon_cap_cooked"}
	anyRedCap       = []string{"red_cap", "red_cap_cooked"}
	anyBlueCap      = []string{"blue_cap", "blue_cap_cooked"}
	anyGreenCap     = []string{"green_cap", "green_cap_cooked"}
	anyMonsterMeat  = []string{"monstermeat", "monstermeat_cooked", "monstermeat_dried"}
	anyEggplant     = []string{"eggplant", "eggplant_cooked"}
	anyTallEgg      = []string{"tallbirdegg", "tallbirdegg_cooked"}
	anyAcorn        = []string{"acorn", "acorn_cooked"}
	anyBerries      = []string{"berries", "berries_cooked"}
	anyJuicyBerries = []string{"berries", "berries_cooked", "berries_juicy", "berries_juicy_cooked"}
	anyDrumstick    = []string{"drumstick", "drumstick_cooked"}
	anyLichenKelp   = []string{"cutlichen", "kelp", "kelp_cooked", "kelp_dried"}
	anyEel          = []string{"eel", "eel_cooked"}
	anyWatermelon   = []string{"watermelon", "watermelon_cooked"}
	anyTomatoAspara = []string{"asparagus", "asparagus_cooked", "tomato", "tomato_cooked"}
	anyGlowBerry    = []string{"wormlight", "wormlight_cooked"}
	anyLesserGlow   = []string{"wormlight_lesser", "wormlight_lesser_cooked"}
)

// Predicates returns the full rule set keyed by recipe id, for both the
// cookpot and the portable cookpot. Each call returns a fresh map.
func Predicates() map[string]Predicate {
	return map[string]Predicate{
		// Cookpot.
		"asparagussoup": func(n, t Bag) bool {
			return n.Sum(anyAsparagus...) >= 1 && t.Get(veggie) > 2 && t.Zero(meat, inedible)
		},
		"baconeggs": func(_, t Bag) bool {
			return t.Get(egg) > 1 && t.Get(meat) > 1 && t.Zero(veggie)
		},
		"bananajuice": func(n, t Bag) bool {
			return n.Sum(anyBanana...) >= 2 && t.Zero(meat, fish, monster)
		},
		"bananapop": func(n, t Bag) bool {
			return n.Sum(anyBanana...) >= 1 && t.Get(frozen) >= 1 && n.Get("twigs") >= 1 && t.Zero(meat, fish)
		},
		"barnaclinguine": func(n, t Bag) bool {
			return n.Sum(anyBarnacle...) >= 2 && t.Get(veggie) >= 2
		},
		"barnaclepita": func(n, t Bag) bool {
			return n.Sum(anyBarnacle...) >= 1 && t.Get(veggie) >= 0.5
		},
		"barnaclesushi": func(n, t Bag) bool {
			return n.Sum(anyBarnacle...) >= 1 && n.Sum(anyKelp...) >= 1 && t.Get(egg) >= 1
		},
		"barnaclestuffedfishhead": func(n, t Bag) bool {
			return n.Sum(anyBarnacle...) >= 1 && t.Get(fish) >= 1.25
		},
		"beefalofeed": func(_, t Bag) bool {
			return t.Get(inedible) > 0 && t.Zero(monster, meat, fish, egg, fat, dairy, magic)
		},
		"beefalotreat": func(n, t Bag) bool {
			return t.Get(inedible) > 0 && t.Get(seed) > 0 && n.Sum(anyForgetMe...) >= 1 &&
				t.Zero(monster, meat, fish, egg, fat, dairy, magic)
		},
		"bonestew": func(_, t Bag) bool {
			return t.Get(meat) >= 3 && t.Zero(inedible)
		},
		"bunnystew": func(_, t Bag) bool {
			return t.Get(frozen) >= 2 && t.Get(meat) > 0 && t.Get(meat) < 1 && t.Zero(inedible)
		},
		"butterflymuffin": func(n, t Bag) bool {
			return n.Sum(anyWings...) >= 1 && t.Zero(meat) && t.Get(veggie) >= 0.5
		},
		"californiaroll": func(n, t Bag) bool {
			return n.Sum(anyKelp...) >= 2 && t.Get(fish) >= 1
		},
		"ceviche": func(_, t Bag) bool {
			return t.Get(fish) >= 2 && t.Get(frozen) > 0 && t.Zero(inedible, egg)
		},
		"dragonpie": func(n, t Bag) bool {
			return n.Sum(anyDragonfruit...) >= 1 && t.Zero(meat)
		},
		"figatoni": func(n, t Bag) bool {
			return n.Sum(anyFig...) >= 1 && t.Get(veggie) >= 2 && t.Zero(meat)
		},
		"figkabab": func(n, t Bag) bool {
			return n.Sum(anyFig...) >= 1 && n.Get("twigs") >= 1 && t.Get(meat) >= 1 && t.Get(monster) <= 1
		},
		"fishsticks": func(n, t Bag) bool {
			return t.Get(fish) > 0 && n.Get("twigs") >= 1 && t.Get(inedible) <= 1
		},
		"fishtacos": func(n, t Bag) bool {
			return t.Get(fish) > 0 && n.Sum(anyCorn...) >= 1
		},
		"flowersalad": func(n, t Bag) bool {
			return n.Get("cactus_flower") >= 1 && t.Get(veggie) >= 2 &&
				t.Zero(meat, inedible, egg, sweetener, fruit)
		},
		"frogglebunwich": func(n, t Bag) bool {
			return n.Sum(anyFrogLegs...) >= 1 && t.Get(veggie) >= 0.5
		},
		"frognewton": func(n, _ Bag) bool {
			return n.Sum(anyFig...) >= 1 && n.Sum(anyFrogLegs...) >= 1
		},
		"frozenbananadaiquiri": func(n, t Bag) bool {
			return n.Sum(anyBanana...) >= 1 && t.Get(frozen) >= 1 && t.Zero(meat, fish)
		},
		"fruitmedley": func(_, t Bag) bool {
			return t.Get(fruit) >= 3 && t.Zero(meat, veggie)
		},
		"guacamole": func(n, t Bag) bool {
			return n.Get("mole") >= 1 && n.Sum(anyAvocadoCacti...) >= 1 && t.Zero(fruit)
		},
		"honeyham": func(n, t Bag) bool {
			return n.Get("honey") >= 1 && t.Get(meat) > 1.5 && t.Zero(inedible)
		},
		"honeynuggets": func(n, t Bag) bool {
			return n.Get("honey") >= 1 && t.Get(meat) > 0 && t.Get(meat) <= 1.5 && t.Zero(inedible)
		},
		"hotchili": func(_, t Bag) bool {
			return t.Get(meat) >= 1.5 && t.Get(veggie) >= 1.5
		},
		"icecream": func(_, t Bag) bool {
			return t.Get(frozen) > 0 && t.Get(dairy) > 0 && t.Get(sweetener) > 0 &&
				t.Zero(meat, veggie, inedible, egg)
		},
		"jammypreserves": func(_, t Bag) bool {
			return t.Get(fruit) > 0 && t.Zero(meat, veggie, inedible)
		},
		"jellybean": func(n, t Bag) bool {
			return n.Get("royal_jelly") >= 1 && t.Zero(inedible, monster)
		},
		"justeggs": func(_, t Bag) bool {
			return t.Get(egg) >= 3
		},
		"kabobs": func(n, t Bag) bool {
			return t.Get(meat) > 0 && n.Get("twigs") >= 1 && t.Get(monster) <= 1 && t.Get(inedible) <= 1
		},
		"koalefig_trunk": func(n, _ Bag) bool {
			return n.Sum(anyTrunk...) >= 1 && n.Sum(anyFig...) >= 1
		},
		"leafloaf": func(n, _ Bag) bool {
			return n.Sum(anyLeafyMeat...) >= 2
		},
		"leafymeatburger": func(n, t Bag) bool {
			return n.Sum(anyLeafyMeat...) >= 1 && n.Sum(anyOnion...) >= 1 && t.Get(veggie) >= 2
		},
		"leafymeatsouffle": func(n, t Bag) bool {
			return n.Sum(anyLeafyMeat...) >= 2 && t.Get(sweetener) >= 2
		},
		"lobsterbisque": func(n, t Bag) bool {
			return n.Sum(anyWobster...) >= 1 && t.Get(frozen) > 0
		},
		"lobsterdinner": func(n, t Bag) bool {
			return n.Sum(anyWobster...) >= 1 && n.Get("butter") >= 1 &&
				t.Get(meat) >= 1 && t.Get(fish) >= 1 && t.Zero(frozen)
		},
		"mandrakesoup": func(n, _ Bag) bool {
			return n.Sum(anyMandrake...) >= 1
		},
		"mashedpotatoes": func(n, t Bag) bool {
			return n.Sum(anyPotato...) >= 2 && n.Sum(anyGarlic...) >= 1 && t.Zero(meat, inedible)
		},
		"meatballs": func(_, t Bag) bool {
			return t.Get(meat) > 0 && t.Zero(inedible)
		},
		"meatysalad": func(n, t Bag) bool {
			return n.Sum(anyLeafyMeat...) >= 1 && t.Get(veggie) >= 3
		},
		"monsterlasagna": func(_, t Bag) bool {
			return t.Get(monster) >= 2 && t.Zero(inedible)
		},
		"pepperpopper": func(n, t Bag) bool {
			return n.Sum(anyPepper...) >= 1 && t.Get(meat) > 0 && t.Get(meat) <= 1.5 && t.Zero(inedible)
		},
		"perogies": func(_, t Bag) bool {
			return t.Get(egg) > 0 && t.Get(meat) > 0 && t.Get(veggie) >= 0.5 && t.Zero(inedible)
		},
		"potatotornado": func(n, t Bag) bool {
			return n.Sum(anyPotato...) >= 1 && n.Get("twigs") >= 1 &&
				t.Get(monster) <= 1 && t.Zero(meat) && t.Get(inedible) <= 2
		},
		"powcake": func(n, _ Bag) bool {
			return n.Get("twigs") >= 1 && n.Get("honey") >= 1 && n.Sum(anyCorn...) >= 1
		},
		"pumpkincookie": func(n, t Bag) bool {
			return n.Sum(anyPumpkin...) >= 1 && t.Get(sweetener) >= 2
		},
		"ratatouille": func(_, t Bag) bool {
			return t.Zero(meat) && t.Get(veggie) >= 0.5 && t.Zero(inedible)
		},
		"salsa": func(n, t Bag) bool {
			return n.Sum(anyTomato...) >= 1 && n.Sum(anyOnion...) >= 1 && t.Zero(meat, inedible, egg)
		},
		"seafoodgumbo": func(_, t Bag) bool {
			return t.Get(fish) > 2
		},
		"shroomcake": func(n, _ Bag) bool {
			return n.Sum(anyMoonCap...) >= 1 && n.Sum(anyRedCap...) >= 1 &&
				n.Sum(anyBlueCap...) >= 1 && n.Sum(anyGreenCap...) >= 1
		},
		"shroombait": func(n, _ Bag) bool {
			return n.Sum(anyMoonCap...) >= 2 && n.Sum(anyMonsterMeat...) >= 1
		},
		"stuffedeggplant": func(n, t Bag) bool {
			return n.Sum(anyEggplant...) >= 1 && t.Get(veggie) > 1
		},
		"surfnturf": func(_, t Bag) bool {
			return t.Get(meat) >= 2.5 && t.Get(fish) >= 1.5 && t.Zero(frozen)
		},
		"sweettea": func(n, t Bag) bool {
			return n.Sum(anyForgetMe...) >= 1 && t.Get(sweetener) > 0 && t.Get(frozen) > 0 &&
				t.Zero(monster, veggie, meat, fish, egg, fat, dairy, inedible)
		},
		"taffy": func(_, t Bag) bool {
			return t.Get(sweetener) >= 3 && t.Zero(meat)
		},
		"talleggs": func(n, t Bag) bool {
			return n.Sum(anyTallEgg...) >= 1 && t.Get(veggie) >= 1
		},
		"trailmix": func(n, t Bag) bool {
			return n.Sum(anyAcorn...) >= 1 && t.Get(seed) >= 1 &&
				n.Sum(anyBerries...) >= 1 && t.Get(fruit) >= 1 &&
				t.Zero(meat, veggie, egg, dairy)
		},
		"turkeydinner": func(n, t Bag) bool {
			return n.Sum(anyDrumstick...) >= 2 && t.Get(meat) > 1 &&
				(t.Get(veggie) >= 0.5 || t.Get(fruit) > 0)
		},
		"unagi": func(n, _ Bag) bool {
			return n.Sum(anyLichenKelp...) >= 1 && n.Sum(anyEel...) >= 1
		},
		"veggieomlet": func(_, t Bag) bool {
			return t.Get(egg) >= 1 && t.Get(veggie) >= 1 && t.Zero(meat, dairy)
		},
		"vegstinger": func(n, t Bag) bool {
			return n.Sum(anyTomatoAspara...) >= 1 && t.Get(veggie) > 2 && t.Get(frozen) > 0 &&
				t.Zero(meat, inedible, egg)
		},
		"waffles": func(n, t Bag) bool {
			return n.Get("butter") >= 1 && n.Sum(anyJuicyBerries...) >= 1 && t.Get(egg) > 0
		},
		"watermelonicle": func(n, t Bag) bool {
			return n.Sum(anyWatermelon...) >= 1 && t.Get(frozen) > 0 && n.Get("twigs") >= 1 &&
				t.Zero(meat, veggie, egg)
		},
		"wetgoop": func(_, _ Bag) bool {
			return true
		},

		// Portable cookpot.
		"bonesoup": func(n, t Bag) bool {
			return n.Get("boneshard") >= 2 && n.Sum(anyOnion...) >= 1 && t.Get(inedible) < 3
		},
		"dragonchilisalad": func(n, t Bag) bool {
			return n.Sum(anyDragonfruit...) >= 1 && n.Sum(anyPepper...) >= 1 && t.Zero(meat, inedible, egg)
		},
		"freshfruitcrepes": func(n, t Bag) bool {
			return t.Get(fruit) >= 1.5 && n.Get("butter") >= 1 && n.Get("honey") >= 1
		},
		"frogfishbowl": func(n, t Bag) bool {
			return n.Sum(anyFrogLegs...) >= 2 && t.Get(fish) >= 1 && t.Zero(inedible)
		},
		"gazpacho": func(n, t Bag) bool {
			return n.Sum(anyAsparagus...) >= 2 && t.Get(frozen) >= 2
		},
		"glowberrymousse": func(n, t Bag) bool {
			return (n.Sum(anyGlowBerry...) >= 1 || n.Sum(anyLesserGlow...) >= 2) &&
				t.Get(fruit) >= 2 && t.Zero(meat, inedible)
		},
		"monstertartare": func(_, t Bag) bool {
			return t.Get(monster) >= 2 && t.Zero(inedible)
		},
		"moqueca": func(n, t Bag) bool {
			return t.Get(fish) > 0 && n.Sum(anyOnion...) >= 1 && n.Sum(anyTomato...) >= 1 && t.Zero(inedible)
		},
		"nightmarepie": func(n, _ Bag) bool {
			return n.Get("nightmarefuel") >= 2 && n.Sum(anyPotato...) >= 1 && n.Sum(anyOnion...) >= 1
		},
		"potatosouffle": func(n, t Bag) bool {
			return n.Sum(anyPotato...) >= 2 && t.Get(egg) > 0 && t.Zero(meat, inedible)
		},
		"voltgoatjelly": func(n, t Bag) bool {
			return n.Get("lightninggoathorn") >= 1 && t.Get(sweetener) >= 2 && t.Zero(meat)
		},
	}
}
