package amdb

import (
	"fmt"
	"runtime"
	"sync"
)

// AirportSet is a group of airports loaded together, e.g. every document of
// a regional AMDB delivery.
type AirportSet struct {
	Airports []*LoadedAirport
}

// LoadedAirport is a parsed airport together with the file it came from.
type LoadedAirport struct {
	Path    string
	Airport *Airport
}

// LoadOptions controls parallel loading behavior and error handling.
type LoadOptions struct {
	// Workers specifies the number of parallel loader goroutines.
	// If 0, defaults to runtime.NumCPU().
	Workers int

	// SkipErrors causes loading to continue even when individual documents fail.
	// Failed documents are skipped and errors are collected.
	// When false, the first error in path order is returned.
	SkipErrors bool

	// Parse is applied to every document.
	Parse ParseOptions

	// Progress is an optional callback for tracking loading progress.
	// Called after each document is loaded (successfully or with error).
	Progress func(loaded, total int)
}

// DefaultLoadOptions returns load options with defaults.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Workers:    runtime.NumCPU(),
		SkipErrors: true,
		Parse:      DefaultParseOptions(),
	}
}

// LoadAirports loads multiple AMDB documents in parallel.
//
// Airports in the returned set keep the order of paths. With SkipErrors the
// set holds every document that loaded and the errors list the others;
// otherwise a failure returns a nil set and that single error.
//
// Example:
//
//	set, errs := amdb.LoadAirports(paths, amdb.NewParser(), amdb.DefaultLoadOptions())
//	if len(errs) > 0 {
//	    fmt.Printf("Skipped %d airports due to errors\n", len(errs))
//	}
func LoadAirports(paths []string, parser Parser, opts LoadOptions) (*AirportSet, []error) {
	if len(paths) == 0 {
		return &AirportSet{Airports: []*LoadedAirport{}}, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	type loadResult struct {
		index   int
		airport *Airport
		err     error
	}

	jobs := make(chan int, len(paths))
	results := make(chan loadResult, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				airport, err := parser.ParseWithOptions(paths[index], opts.Parse)
				results <- loadResult{index: index, airport: airport, err: err}
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	logger := opts.Parse.logger()
	loadedByIndex := make([]*Airport, len(paths))
	errsByIndex := make([]error, len(paths))
	loaded := 0

	for result := range results {
		loaded++
		if opts.Progress != nil {
			opts.Progress(loaded, len(paths))
		}

		if result.err != nil {
			err := fmt.Errorf("load airport %s: %w", paths[result.index], result.err)
			logger.Warn("failed to load airport", "path", paths[result.index], "error", result.err)
			errsByIndex[result.index] = err
			continue
		}
		loadedByIndex[result.index] = result.airport
	}

	set := &AirportSet{Airports: make([]*LoadedAirport, 0, len(paths))}
	var errs []error
	for i, path := range paths {
		if err := errsByIndex[i]; err != nil {
			if !opts.SkipErrors {
				return nil, []error{err}
			}
			errs = append(errs, err)
			continue
		}
		set.Airports = append(set.Airports, &LoadedAirport{Path: path, Airport: loadedByIndex[i]})
	}

	logger.Debug("loaded airports", "loaded", len(set.Airports), "failed", len(errs))
	return set, errs
}

// Find returns the airport with the given ICAO location indicator.
func (s *AirportSet) Find(icao string) (*LoadedAirport, bool) {
	for _, a := range s.Airports {
		if a.Airport.ReferencePoint.AirportID == icao {
			return a, true
		}
	}
	return nil, false
}
