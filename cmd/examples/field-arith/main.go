// Package main demonstrates prime field arithmetic
package main

import (
	"fmt"

	"github.com/Caqil/ecfield/pkg/field"
	"github.com/Caqil/ecfield/pkg/logger"
)

func main() {
	log := logger.New(logger.ConfigFromEnv())
	logger.SetGlobalLogger(log)
	logger.Info("field-arith starting")

	fmt.Println("=== Prime Field Arithmetic ===")

	f57 := mustField(log, 57)
	a, b := mustElement(log, f57, 44), mustElement(log, f57, 33)
	sum, err := a.Add(b)
	check(log, err, "add")
	fmt.Printf("  %s + %s = %s\n", a, b, sum)

	a, b = mustElement(log, f57, 9), mustElement(log, f57, 29)
	diff, err := a.Sub(b)
	check(log, err, "sub")
	fmt.Printf("  %s - %s = %s\n", a, b, diff)

	f31 := mustField(log, 31)
	a, b = mustElement(log, f31, 3), mustElement(log, f31, 24)
	quo, err := a.Div(b)
	check(log, err, "div")
	fmt.Printf("  %s / %s = %s\n", a, b, quo)

	a = mustElement(log, f31, 17)
	pow, err := a.Pow(-3)
	check(log, err, "pow")
	fmt.Printf("  %s ^ -3 = %s\n", a, pow)

	// Fermat: a^(p-1) = 1 for every non-zero a
	fmt.Println("\nFermat's little theorem over F_31:")
	for v := uint64(1); v < f31.Modulus(); v += 6 {
		e := mustElement(log, f31, v)
		r, err := e.Pow(int64(f31.Modulus() - 1))
		check(log, err, "pow")
		fmt.Printf("  %s ^ 30 = %s\n", e, r)
	}

	_, err = mustElement(log, f31, 3).Add(mustElement(log, f57, 3))
	log.InfoEvent().Err(err).Msg("mixing fields is rejected")

	_, err = mustElement(log, f31, 5).Div(f31.Zero())
	log.InfoEvent().Err(err).Msg("division by zero is rejected")

	_, err = f31.Element(31)
	if err != nil {
		logger.Error("31 is outside F_31: " + err.Error())
	}
}

func mustField(log *logger.Logger, p uint64) *field.Field {
	f, err := field.NewField(p)
	check(log, err, "field")
	return f
}

func mustElement(log *logger.Logger, f *field.Field, v uint64) field.Element {
	e, err := f.Element(v)
	check(log, err, "element")
	return e
}

func check(log *logger.Logger, err error, op string) {
	if err != nil {
		log.ErrorEvent().Str("op", op).Err(err).Msg("field operation failed")
		log.Fatal("aborting")
	}
}
