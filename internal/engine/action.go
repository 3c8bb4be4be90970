package engine

import "github.com/tatianab/dragon-repeller/internal/models"

// Kind enumerates everything a player can ask the engine to do.
type Kind int

const (
	KindNone Kind = iota
	KindTravel
	KindFight
	KindAttack
	KindDodge
	KindRun
	KindBuyHealth
	KindBuyWeapon
	KindSellWeapon
	KindRestart
	KindEasterEgg
	KindPick
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindTravel:
		return "Travel"
	case KindFight:
		return "Fight"
	case KindAttack:
		return "Attack"
	case KindDodge:
		return "Dodge"
	case KindRun:
		return "Run"
	case KindBuyHealth:
		return "BuyHealth"
	case KindBuyWeapon:
		return "BuyWeapon"
	case KindSellWeapon:
		return "SellWeapon"
	case KindRestart:
		return "Restart"
	case KindEasterEgg:
		return "EasterEgg"
	case KindPick:
		return "Pick"
	default:
		return "Unknown"
	}
}

// Action is one player command. Only the field matching Kind is set.
type Action struct {
	Kind    Kind
	To      models.LocationID // KindTravel
	Monster string            // KindFight, by roster name
	Guess   int               // KindPick
}

// Travel moves to a location.
func Travel(to models.LocationID) Action { return Action{Kind: KindTravel, To: to} }

// Fight starts a fight with the named monster.
func Fight(monster string) Action { return Action{Kind: KindFight, Monster: monster} }

// Pick plays the easter egg with guess.
func Pick(guess int) Action { return Action{Kind: KindPick, Guess: guess} }

var (
	Attack     = Action{Kind: KindAttack}
	Dodge      = Action{Kind: KindDodge}
	Run        = Action{Kind: KindRun}
	BuyHealth  = Action{Kind: KindBuyHealth}
	BuyWeapon  = Action{Kind: KindBuyWeapon}
	SellWeapon = Action{Kind: KindSellWeapon}
	Restart    = Action{Kind: KindRestart}
	EasterEgg  = Action{Kind: KindEasterEgg}
)

// actionIDs is the wire vocabulary shared by content files and shells.
var actionIDs = map[string]Action{
	"goTown":        Travel(models.LocationTown),
	"goStore":       Travel(models.LocationStore),
	"goCave":        Travel(models.LocationCave),
	"goDungeon":     Travel(models.LocationDungeon),
	"goMountains":   Travel(models.LocationMountains),
	"goCastle":      Travel(models.LocationCastle),
	"fightSlime":    Fight("slime"),
	"fightBeast":    Fight("fanged beast"),
	"fightGoblin":   Fight("goblin"),
	"fightSkeleton": Fight("skeleton"),
	"fightTroll":    Fight("troll"),
	"fightVampire":  Fight("vampire"),
	"fightKnight":   Fight("dark knight"),
	"fightDragon":   Fight("dragon"),
	"attack":        Attack,
	"dodge":         Dodge,
	"run":           Run,
	"buyHealth":     BuyHealth,
	"buyWeapon":     BuyWeapon,
	"sellWeapon":    SellWeapon,
	"restart":       Restart,
	"easterEgg":     EasterEgg,
	"pickTwo":       Pick(2),
	"pickEight":     Pick(8),
}

var idsByAction = func() map[Action]string {
	m := make(map[Action]string, len(actionIDs))
	for id, a := range actionIDs {
		m[a] = id
	}
	return m
}()

// ParseAction resolves a wire id. Unknown ids report false.
func ParseAction(id string) (Action, bool) {
	a, ok := actionIDs[id]
	return a, ok
}

// ID returns the wire id of a, or "" when a has none.
func (a Action) ID() string {
	return idsByAction[a]
}

func (a Action) String() string {
	if id := a.ID(); id != "" {
		return id
	}
	return a.Kind.String()
}
