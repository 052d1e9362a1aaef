package cabi

// DivZero is the $div_zero trap: division by zero.
func DivZero() { trap("Division by zero", 2) }

// OutOfBound is the $out_of_bound trap: index out of bounds.
func OutOfBound() { trap("Index out of bounds", 3) }

// NoneOp is the $none_op trap: an operation attempted on None.
func NoneOp() { trap("Operation on None", 4) }
