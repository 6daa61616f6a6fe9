package j

import "math"

// Equal reports structural value equality. Floats compare NaN equal to NaN.
func Equal(a, b J) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case F64:
		bf, ok := b.(F64)
		return ok && (a == bf || (math.IsNaN(float64(a)) && math.IsNaN(float64(bf))))
	case MixedList:
		bl, ok := b.(MixedList)
		if !ok || len(a) != len(bl) {
			return false
		}
		for i := range a {
			if !Equal(a[i], bl[i]) {
				return false
			}
		}
		return true
	case *Series:
		bs, ok := b.(*Series)
		return ok && a.Equal(bs)
	case *Matrix:
		bm, ok := b.(*Matrix)
		return ok && a.Equal(bm)
	case *Dict:
		bd, ok := b.(*Dict)
		return ok && a.Equal(bd)
	case *DataFrame:
		bdf, ok := b.(*DataFrame)
		return ok && a.Equal(bdf)
	default:
		return a == b
	}
}
