package utils

import (
	"fmt"
	"runtime"
	"sync"
)

type PartitionMap struct {
	MaxIndex       int // MaxIndex is partitioned into ParallelDegree partitions
	ParallelDegree int
	Partitions     [][2]int // Beginning and end index of partitions
}

func NewPartitionMap(ParallelDegree, maxIndex int) (pm *PartitionMap) {
	if ParallelDegree < 1 {
		ParallelDegree = 1
	}
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

/*
NewPartitionMapCPU picks the parallel degree from ProcLimit, or from the CPU count when ProcLimit is zero.
A single partition is used when there are fewer items than workers.
*/
func NewPartitionMapCPU(ProcLimit, maxIndex int) (pm *PartitionMap) {
	var (
		ParallelDegree = ProcLimit
	)
	if ParallelDegree <= 0 {
		ParallelDegree = runtime.NumCPU()
	}
	if ParallelDegree > maxIndex {
		ParallelDegree = 1
	}
	return NewPartitionMap(ParallelDegree, maxIndex)
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	// This routine splits one dimension into c.ParallelDegree pieces, with a maximum imbalance of one item
	var (
		Npart            = pm.MaxIndex / (pm.ParallelDegree)
		startAdd, endAdd int
		remainder        int
	)
	remainder = pm.MaxIndex % pm.ParallelDegree
	if remainder != 0 { // spread the remainder over the first chunks evenly
		if threadNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}

/*
RunBuckets calls work once per partition, each in its own go routine, and waits for all of them.
A panic inside a worker is re-raised on the calling go routine after every worker has returned.
*/
func (pm *PartitionMap) RunBuckets(work func(bn, kMin, kMax int)) {
	var (
		wg     = sync.WaitGroup{}
		NPar   = pm.ParallelDegree
		faults = make([]any, NPar)
	)
	if NPar == 1 {
		work(0, pm.Partitions[0][0], pm.Partitions[0][1])
		return
	}
	for np := 0; np < NPar; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					faults[np] = r
				}
			}()
			kMin, kMax := pm.GetBucketRange(np)
			work(np, kMin, kMax)
		}(np)
	}
	wg.Wait()
	for np, fault := range faults {
		if fault != nil {
			if err, ok := fault.(error); ok {
				panic(fmt.Errorf("partition %d: %w", np, err))
			}
			panic(fault)
		}
	}
}
