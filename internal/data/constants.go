package data

// TileFlag — битовые флаги записи tiledata.
// Подмножество флагов клиентского tiledata.mul, влияющих на передвижение и обзор.
type TileFlag uint32

const (
	FlagImpassable TileFlag = 1 << iota
	FlagSurface
	FlagBridge
	FlagWet
	FlagNoDiagonal
	FlagDoor
	FlagInternal
	FlagNoShoot
)

// flagNames — имена флагов в YAML-файлах tiledata.
var flagNames = map[string]TileFlag{
	"impassable":  FlagImpassable,
	"surface":     FlagSurface,
	"bridge":      FlagBridge,
	"wet":         FlagWet,
	"no_diagonal": FlagNoDiagonal,
	"door":        FlagDoor,
	"internal":    FlagInternal,
	"no_shoot":    FlagNoShoot,
}

// Has reports whether every bit of f2 is set in f.
func (f TileFlag) Has(f2 TileFlag) bool {
	return f&f2 == f2
}
