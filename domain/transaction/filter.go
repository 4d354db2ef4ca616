package transaction

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/kaspanet/txtemplate/infrastructure/logger"
)

// MatchInputs returns, in input order, the indexes of the inputs whose
// finalized script satisfies criteria. An input that cannot be finalized
// is skipped rather than failing the scan.
func (tx *Transaction) MatchInputs(criteria *MatchCriteria) []int {
	matching := make([]int, 0)
	if criteria.ScriptTemplate() == nil {
		return matching
	}
	for index, input := range tx.Inputs {
		if matchInput(index, input, criteria) {
			matching = append(matching, index)
		}
	}
	return matching
}

// MatchInputsConcurrently is MatchInputs with the inputs evaluated on a
// pool of goroutines. The result is in input order.
func (tx *Transaction) MatchInputsConcurrently(criteria *MatchCriteria) []int {
	matching := make([]int, 0)
	if criteria.ScriptTemplate() == nil || len(tx.Inputs) == 0 {
		return matching
	}

	onEnd := logger.LogAndMeasureExecutionTime(log, "MatchInputsConcurrently")
	defer onEnd()

	workers := runtime.NumCPU()
	if workers > len(tx.Inputs) {
		workers = len(tx.Inputs)
	}
	matched := make([]bool, len(tx.Inputs))
	indexes := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		spawn(fmt.Sprintf("MatchInputsConcurrently-worker-%d", i), func() {
			defer wg.Done()
			for index := range indexes {
				matched[index] = matchInput(index, tx.Inputs[index], criteria)
			}
		})
	}
	for index := range tx.Inputs {
		indexes <- index
	}
	close(indexes)
	wg.Wait()

	for index, ok := range matched {
		if ok {
			matching = append(matching, index)
		}
	}
	return matching
}

func matchInput(index int, input *Input, criteria *MatchCriteria) bool {
	script, err := input.FinalizedScript()
	if err != nil {
		log.Debugf("Input %d excluded from the match: %s", index, err)
		return false
	}
	_, ok := criteria.Match(script, input.PreviousValue)
	return ok
}

// MatchOutputs returns, in output order, the indexes of the outputs whose
// locking script and value satisfy criteria.
func (tx *Transaction) MatchOutputs(criteria *MatchCriteria) []int {
	matching := make([]int, 0)
	if criteria.ScriptTemplate() == nil {
		return matching
	}
	for index, output := range tx.Outputs {
		value := output.Value
		if _, ok := criteria.Match(output.LockingScript, &value); ok {
			matching = append(matching, index)
		}
	}
	return matching
}
