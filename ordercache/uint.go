package ordercache

import (
	"encoding/json"

	"lukechampine.com/uint128"
)

// Uint is the unsigned quantity type used for lot counts all over the cache.
type Uint struct {
	v uint128.Uint128
}

// NewZeroUint returns zero Uint.
func NewZeroUint() Uint {
	return Uint{}
}

// NewUint returns Uint holding the given value.
func NewUint(u uint64) Uint {
	return Uint{v: uint128.From64(u)}
}

// NewUintFromStr parses Uint from its decimal string form.
func NewUintFromStr(v string) (Uint, error) {
	if v == "" {
		return NewZeroUint(), nil
	}

	u, err := uint128.FromString(v)
	if err != nil {
		return Uint{}, err
	}

	return Uint{
		v: u,
	}, nil
}

func (u Uint) Add(v Uint) Uint {
	u.v = u.v.Add(v.v)
	return u
}

func (u Uint) Sub(v Uint) Uint {
	u.v = u.v.Sub(v.v)
	return u
}

func (u Uint) Cmp(v Uint) int {
	return u.v.Cmp(v.v)
}

func (u Uint) IsZero() bool {
	return u.v.IsZero()
}

func (u Uint) Equals(v Uint) bool {
	return u.v.Equals(v.v)
}

func (u Uint) Equals64(v uint64) bool {
	return u.v.Equals64(v)
}

func (u Uint) LessThan(v Uint) bool {
	return u.v.Cmp(v.v) < 0
}

func (u Uint) LessThanOrEqualTo(v Uint) bool {
	return u.v.Cmp(v.v) <= 0
}

func (u Uint) GreaterThan(v Uint) bool {
	return u.v.Cmp(v.v) > 0
}

func (u Uint) GreaterThanOrEqualTo(v Uint) bool {
	return u.v.Cmp(v.v) >= 0
}

func (u Uint) String() string {
	return u.v.String()
}

// ---------------------JSON---------------------

var (
	_ json.Marshaler   = Uint{}
	_ json.Unmarshaler = &Uint{}
)

func (u Uint) MarshalJSON() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint) UnmarshalJSON(data []byte) error {
	u128, err := uint128.FromString(string(data))
	if err != nil {
		return err
	}

	u.v = u128

	return nil
}

func Min(a Uint, b Uint) Uint {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

func Max(a Uint, b Uint) Uint {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}
