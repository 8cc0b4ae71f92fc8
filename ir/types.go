package ir

import "fmt"

// DataType tags the scalar type of a Val.
type DataType int

const (
	DataTypeNull DataType = iota
	Int
	Double
	Bool
	Float
	Half
)

func (dt DataType) String() string {
	switch dt {
	case Int:
		return "Int"
	case Double:
		return "Double"
	case Bool:
		return "Bool"
	case Float:
		return "Float"
	case Half:
		return "Half"
	default:
		return "Null"
	}
}

// ValType tags the kind of a Val. Lookup strategy is chosen from it.
type ValType int

const (
	ScalarVal ValType = iota + 1
	NamedScalarVal
	TensorViewVal
)

func (vt ValType) String() string {
	switch vt {
	case ScalarVal:
		return "Scalar"
	case NamedScalarVal:
		return "NamedScalar"
	case TensorViewVal:
		return "TensorView"
	default:
		return fmt.Sprintf("ValType(%d)", int(vt))
	}
}

// ParallelType names the axis a loop is mapped to on the device.
type ParallelType int

const (
	BIDz ParallelType = iota
	BIDy
	BIDx
	TIDz
	TIDy
	TIDx
	Vectorize
	Unroll
	Serial
)

func (pt ParallelType) String() string {
	switch pt {
	case BIDz:
		return "blockIdx.z"
	case BIDy:
		return "blockIdx.y"
	case BIDx:
		return "blockIdx.x"
	case TIDz:
		return "threadIdx.z"
	case TIDy:
		return "threadIdx.y"
	case TIDx:
		return "threadIdx.x"
	case Vectorize:
		return "V"
	case Unroll:
		return "UR"
	case Serial:
		return "S"
	default:
		return fmt.Sprintf("ParallelType(%d)", int(pt))
	}
}

// IsThread reports whether pt is one of the grid or block dimensions.
func (pt ParallelType) IsThread() bool {
	switch pt {
	case BIDz, BIDy, BIDx, TIDz, TIDy, TIDx:
		return true
	default:
		return false
	}
}

// ThreadSize returns the name of the runtime extent for a thread parallel
// type, such as "blockDim.x" for TIDx. It returns "" for other types.
func (pt ParallelType) ThreadSize() string {
	switch pt {
	case BIDz:
		return "gridDim.z"
	case BIDy:
		return "gridDim.y"
	case BIDx:
		return "gridDim.x"
	case TIDz:
		return "blockDim.z"
	case TIDy:
		return "blockDim.y"
	case TIDx:
		return "blockDim.x"
	default:
		return ""
	}
}
