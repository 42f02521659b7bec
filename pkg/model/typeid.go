package model

//go:generate enumer -type=TypeID -trimprefix=Type -transform=lower -json -text -output=typeid_enumer.go

// TypeID is one of the 18 elemental types. The zero value is not a valid type.
type TypeID int

const (
	TypeNormal TypeID = iota + 1
	TypeFire
	TypeWater
	TypeElectric
	TypeGrass
	TypeIce
	TypeFighting
	TypePoison
	TypeGround
	TypeFlying
	TypePsychic
	TypeBug
	TypeRock
	TypeGhost
	TypeDragon
	TypeDark
	TypeSteel
	TypeFairy
)

// ParseTypeID matches name exactly against the lowercase vocabulary.
func ParseTypeID(name string) (TypeID, bool) {
	id, err := TypeIDString(name)
	if err != nil || id.String() != name {
		return 0, false
	}

	return id, true
}

func (id TypeID) DisplayName() string {
	return DisplayName(id.String())
}
