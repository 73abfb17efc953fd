// Package main demonstrates point arithmetic on toy and production curves
package main

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/Caqil/ecfield/pkg/crypto/rand"
	"github.com/Caqil/ecfield/pkg/curve"
	"github.com/Caqil/ecfield/pkg/field"
	"github.com/Caqil/ecfield/pkg/logger"
)

func main() {
	logger.SetGlobalLogger(logger.New(logger.ConfigFromEnv()))
	logger.Info("curve-points starting")

	fmt.Println("=== Elliptic Curve Points: y^2 = x^3 + 7 over F_223 ===")

	c, err := curve.NewFieldCurve("toy223", 0, 7, 223)
	if err != nil {
		logger.Error("cannot build toy curve")
		return
	}
	log := logger.Global().With().Str("curve", c.Name()).Uint64("p", 223).Logger()

	for _, xy := range [][2]uint64{{192, 105}, {17, 56}, {200, 119}, {1, 193}, {42, 99}} {
		_, err := curve.NewFieldPoint(c, xy[0], xy[1])
		log.DebugEvent().Uint64("x", xy[0]).Uint64("y", xy[1]).Bool("on_curve", err == nil).Msg("membership check")
		fmt.Printf("  (%d, %d) on curve: %v\n", xy[0], xy[1], err == nil)
	}

	p1, err := curve.NewFieldPoint(c, 170, 142)
	check(log, err, "point")
	p2, err := curve.NewFieldPoint(c, 60, 139)
	check(log, err, "point")
	sum, err := p1.Add(p2)
	check(log, err, "add")
	fmt.Printf("\n  %s + %s = %s\n", p1, p2, sum)

	g, err := curve.NewFieldPoint(c, 47, 71)
	check(log, err, "point")
	order, err := g.Order(1000)
	check(log, err, "order")
	fmt.Printf("\nMultiples of %s (order %d):\n", g, order)
	for k := uint64(1); k <= order; k++ {
		r, err := g.ScalarMul(k)
		check(log, err, "scalar mul")
		fmt.Printf("  %2d * G = %s\n", k, r)
	}

	fmt.Println("\n=== secp256k1 ===")
	secp := curve.Secp256k1Generator()
	n := curve.Secp256k1Order()

	scalars := make([]*big.Int, 8)
	points := make([]curve.Point[field.Fp256k1], len(scalars))
	for i := range scalars {
		scalars[i], err = rand.GenerateRandomScalar(nil, n)
		check(log, err, "random scalar")
		points[i] = secp
	}

	start := time.Now()
	results, err := curve.ScalarMulBatch(context.Background(), curve.DefaultBatchConfig(), points, scalars)
	check(log, err, "batch")
	log.InfoEvent().Uint64("jobs", uint64(len(results))).Dur("elapsed", time.Since(start)).Msg("batch scalar multiplication done")

	for i, r := range results {
		x, _, _ := r.Coordinates()
		fmt.Printf("  k%d * G: x = %064x\n", i, x.BigInt())
	}

	inf, err := secp.ScalarMulBig(n)
	check(log, err, "scalar mul")
	log.InfoEvent().Stringer("point", inf).Msg("n * G")
}

func check(log *logger.Logger, err error, op string) {
	if err != nil {
		log.ErrorEvent().Str("op", op).Err(err).Msg("curve operation failed")
		log.Fatal("aborting")
	}
}
