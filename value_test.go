package fraux

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueAccessors(t *testing.T) {
	require := require.New(t)

	v := Dict(map[string]*Value{
		"name":   String("fraux"),
		"count":  Integer(3),
		"pieces": List(Bytes([]byte{0x01, 0x02}), Bytes([]byte{0x03})),
	})
	require.Equal(KindDict, v.Kind())
	require.Equal(3, v.Len())
	require.Equal([]byte("fraux"), v.Get("name").Bytes())
	require.Equal(int32(3), v.Get("count").Int32())
	require.Equal(2, v.Get("pieces").Len())
	require.Nil(v.Get("missing"))
	require.Nil(v.Get("name").Get("anything"))
}

func TestValueEqual(t *testing.T) {
	require := require.New(t)

	require.True(String("abc").Equal(Bytes([]byte("abc"))))
	require.False(String("abc").Equal(String("abd")))
	require.False(String("1").Equal(Integer(1)))

	require.True(Integer(-23).Equal(Integer(-23)))
	require.False(Integer(-23).Equal(Integer(23)))

	// List equality is order-dependent.
	require.True(List(Integer(1), Integer(2)).Equal(List(Integer(1), Integer(2))))
	require.False(List(Integer(1), Integer(2)).Equal(List(Integer(2), Integer(1))))
	require.False(List(Integer(1)).Equal(List(Integer(1), Integer(1))))

	// Dictionary equality is order-independent.
	a := Dict(map[string]*Value{"x": Integer(1), "y": String("z")})
	b := Dict(map[string]*Value{"y": String("z"), "x": Integer(1)})
	require.True(a.Equal(b))
	require.False(a.Equal(Dict(map[string]*Value{"x": Integer(1)})))
	require.False(a.Equal(Dict(map[string]*Value{"x": Integer(1), "y": String("w")})))
}

func TestValueEqualNested(t *testing.T) {
	require := require.New(t)

	build := func() *Value {
		return Dict(map[string]*Value{
			"info": Dict(map[string]*Value{
				"length": Integer(1024),
				"files":  List(String("a"), String("b")),
			}),
		})
	}
	require.True(build().Equal(build()))

	other := build()
	other.Get("info").dict["length"] = Integer(1025)
	require.False(build().Equal(other))
}
