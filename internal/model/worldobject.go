package model

// Kind tags the concrete variant behind an Object.
type Kind uint8

const (
	KindLand Kind = iota
	KindStatic
	KindItem
	KindMulti
	KindMobile
)

func (k Kind) String() string {
	switch k {
	case KindLand:
		return "land"
	case KindStatic:
		return "static"
	case KindItem:
		return "item"
	case KindMulti:
		return "multi"
	case KindMobile:
		return "mobile"
	}
	return "unknown"
}

// Object — закрытый вариант объектов мира: *Land, *Static, *Item, *Multi, *Mobile.
// Потребители различают варианты через type switch; внешние пакеты не могут
// добавить новый вариант (worldObject не экспортирован).
type Object interface {
	ObjectID() uint32
	Kind() Kind
	Graphic() uint16
	Location() Location
	X() int
	Y() int
	Z() int
	worldObject() *WorldObject
}

// WorldObject — общая часть всех объектов мира: ID, графика и координаты.
// Не потокобезопасен: мир принадлежит горутине симуляции.
type WorldObject struct {
	objectID uint32
	graphic  uint16
	location Location
}

// NewWorldObject создаёт базовую часть объекта.
func NewWorldObject(objectID uint32, graphic uint16, loc Location) WorldObject {
	return WorldObject{
		objectID: objectID,
		graphic:  graphic,
		location: loc,
	}
}

// ObjectID возвращает уникальный ID объекта (immutable после создания).
func (w *WorldObject) ObjectID() uint32 {
	return w.objectID
}

// Graphic возвращает ID графики (ключ в таблицах tiledata).
func (w *WorldObject) Graphic() uint16 {
	return w.graphic
}

// Location возвращает копию координат объекта (value type).
func (w *WorldObject) Location() Location {
	return w.location
}

// SetLocation устанавливает новые координаты объекта.
// Объект, зарегистрированный в карте, перемещается через world.Map.MoveObject.
func (w *WorldObject) SetLocation(loc Location) {
	w.location = loc
}

// X возвращает координату X.
func (w *WorldObject) X() int {
	return w.location.X
}

// Y возвращает координату Y.
func (w *WorldObject) Y() int {
	return w.location.Y
}

// Z возвращает координату Z.
func (w *WorldObject) Z() int {
	return w.location.Z
}

func (w *WorldObject) worldObject() *WorldObject {
	return w
}

// Static is a fixed piece of map art (walls, floors, stairs).
type Static struct {
	WorldObject
}

// NewStatic creates a static at loc.
func NewStatic(objectID uint32, graphic uint16, loc Location) *Static {
	return &Static{WorldObject: NewWorldObject(objectID, graphic, loc)}
}

func (*Static) Kind() Kind { return KindStatic }

// Item is a dynamic object lying in the world (doors, furniture, containers).
type Item struct {
	WorldObject

	// Locked marks locked doors and containers.
	Locked bool
	// MultiContainer marks the item that represents a whole multi (house/boat deed placement).
	MultiContainer bool
}

// NewItem creates an unlocked item at loc.
func NewItem(objectID uint32, graphic uint16, loc Location) *Item {
	return &Item{WorldObject: NewWorldObject(objectID, graphic, loc)}
}

func (*Item) Kind() Kind { return KindItem }

// MultiState holds per-component flags of a multi (house) piece.
type MultiState uint8

const (
	// MultiGenericInternal marks components that stay walkable while editing a custom house.
	MultiGenericInternal MultiState = 1 << iota
	// MultiIgnoreInRender marks hidden components that must not block movement.
	MultiIgnoreInRender
)

// Multi is one component of a multi-tile structure (house, boat).
type Multi struct {
	WorldObject

	Custom  bool
	Preview bool
	State   MultiState
}

// NewMulti creates a multi component at loc.
func NewMulti(objectID uint32, graphic uint16, loc Location) *Multi {
	return &Multi{WorldObject: NewWorldObject(objectID, graphic, loc)}
}

func (*Multi) Kind() Kind { return KindMulti }

// Mobile is a creature or character standing in the world.
type Mobile struct {
	WorldObject

	Dead             bool
	IgnoreCharacters bool
}

// NewMobile creates a living mobile at loc.
func NewMobile(objectID uint32, body uint16, loc Location) *Mobile {
	return &Mobile{WorldObject: NewWorldObject(objectID, body, loc)}
}

func (*Mobile) Kind() Kind { return KindMobile }
