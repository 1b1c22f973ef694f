package bench

import (
	"fmt"
	"time"

	"github.com/gostonefire/hashmetrics"
	"github.com/gostonefire/hashmetrics/crt"
	"github.com/gostonefire/hashmetrics/hashfunc"
	"github.com/gostonefire/hashmetrics/internal/keyset"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Config - Holds what to benchmark
//   - CollisionResolutionTechnique is one of crt.SeparateChaining or crt.LinearProbing
//   - HashFunction is the hash function to create tables with
//   - Capacity is the initial capacity of every table created
//   - Repeats is the number of runs to average timings over
type Config struct {
	CollisionResolutionTechnique int
	HashFunction                 hashfunc.HashFunction
	Capacity                     int64
	Repeats                      int
}

// Method - Returns the name of the technique and hash function combination, e.g. "LinearProbing-Fibonacci"
func (C Config) Method() string {
	return fmt.Sprintf("%s-%s", crt.Name(C.CollisionResolutionTechnique), C.HashFunction.Name())
}

// Result - Metrics after all inserts and mean durations of each bulk phase
type Result struct {
	Dataset    string
	Method     string
	Metrics    hashmetrics.TableMetrics
	InsertTime time.Duration
	FindTime   time.Duration
	EraseTime  time.Duration
	Found      int64
	Removed    int64
}

// run - Outcome of one timed run
type run struct {
	metrics    hashmetrics.TableMetrics
	insertTime time.Duration
	findTime   time.Duration
	eraseTime  time.Duration
	found      int64
	removed    int64
}

// Run - Feeds the dataset through insert, lookup and delete on a fresh table per repeat and averages the timings.
// Table construction is not part of any timed phase. Metrics are taken after the insert phase of the last run.
func Run(dataset keyset.Dataset, cfg Config) (result Result, err error) {
	if cfg.Repeats < 1 {
		err = errors.Errorf("repeats must be at least 1, got %d", cfg.Repeats)
		return
	}
	if cfg.HashFunction == nil {
		err = errors.New("no hash function given")
		return
	}

	result = Result{
		Dataset: dataset.Name,
		Method:  cfg.Method(),
	}

	var insertTotal, findTotal, eraseTotal time.Duration
	for i := 0; i < cfg.Repeats; i++ {
		var r run
		r, err = runOnce(dataset.Keys, cfg)
		if err != nil {
			err = errors.Wrapf(err, "run %d of %s on %s", i+1, result.Method, dataset.Name)
			return
		}

		log.Debugf("%s on %s run %d: insert %v, find %v, erase %v", result.Method, dataset.Name, i+1, r.insertTime, r.findTime, r.eraseTime)

		insertTotal += r.insertTime
		findTotal += r.findTime
		eraseTotal += r.eraseTime
		result.Metrics = r.metrics
		result.Found = r.found
		result.Removed = r.removed
	}

	n := time.Duration(cfg.Repeats)
	result.InsertTime = insertTotal / n
	result.FindTime = findTotal / n
	result.EraseTime = eraseTotal / n

	return
}

// runOnce - Creates a table and times the insert, find and erase phases over keys
func runOnce(keys []int32, cfg Config) (r run, err error) {
	ht, _, err := hashmetrics.NewHashTable(cfg.CollisionResolutionTechnique, cfg.Capacity, cfg.HashFunction)
	if err != nil {
		err = errors.Wrap(err, "NewHashTable")
		return
	}

	start := time.Now()
	for _, k := range keys {
		ht.Insert(k)
	}
	r.insertTime = time.Since(start)

	r.metrics = ht.Metrics()

	start = time.Now()
	for _, k := range keys {
		if ht.Contains(k) {
			r.found++
		}
	}
	r.findTime = time.Since(start)

	start = time.Now()
	for _, k := range keys {
		if ht.Remove(k) {
			r.removed++
		}
	}
	r.eraseTime = time.Since(start)

	return
}

// Microseconds - Returns d as a fractional number of microseconds
func Microseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}
