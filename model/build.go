package model

import (
	"go-ml.dev/pkg/disrnn/fu"
	"go-ml.dev/pkg/disrnn/trials"
	"go-ml.dev/pkg/zorros/zlog"
	"go-ml.dev/pkg/zorros/zorros"
)

/*
Build shifts and pads the trial table into session batched tensors.

For a session of length L the first L-1 steps of its column hold the trials 1..L-1:
inputs are (response, reward) of the trial and targets are its response.
The rest of the column is filled by Sentinel.
Batch size 0 means the full batch every step. Nil table has no trials.
*/
func Build(table *trials.Table, policy IgnorePolicy, batchSize int) (*Dataset, error) {
	if table == nil {
		return nil, ErrNoTrials
	}
	for _, c := range trials.Schema {
		if !table.Has(c) {
			return nil, &MissingColumnError{c}
		}
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if batchSize < 0 {
		return nil, zorros.Errorf("batch size must be positive or 0, got %d", batchSize)
	}
	if table.Len() == 0 {
		return nil, ErrNoTrials
	}
	if policy == Exclude {
		// TODO: drop no-response trials once their encoding in the trial table is settled
		zlog.Warning("ignore policy `exclude` changes the class count only, no-response trials are kept")
	}

	sessions := table.Sessions()
	lengths := make([]int, len(sessions))
	for i, s := range sessions {
		lengths[i] = len(s.Trials)
		for _, x := range s.Trials {
			if x.Response < 0 {
				return nil, &InvalidCodeError{s.ID, x.Number, int(x.Response)}
			}
		}
	}
	steps := fu.Maxi(lengths...) - 1

	xs := NewTensor(steps, len(sessions), len(InputNames), Sentinel)
	ys := NewTensor(steps, len(sessions), len(TargetNames), Sentinel)
	ids := make([]string, len(sessions))
	for s, ses := range sessions {
		ids[s] = ses.ID
		for t, x := range ses.Trials[1:] {
			xs.Set(t, s, 0, float32(x.Response))
			xs.Set(t, s, 1, float32(x.Reward.Int()))
			ys.Set(t, s, 0, float32(x.Response))
		}
	}

	return &Dataset{
		Xs:        xs,
		Ys:        ys,
		YType:     Categorical,
		NClasses:  policy.Classes(),
		XNames:    append([]string(nil), InputNames...),
		YNames:    append([]string(nil), TargetNames...),
		BatchSize: batchSize,
		BatchMode: RandomBatch,
		Sessions:  ids,
		Lengths:   lengths,
	}, nil
}

/*
LuckyBuild builds dataset and trows any occurred errors as a panic
*/
func LuckyBuild(table *trials.Table, policy IgnorePolicy, batchSize int) *Dataset {
	ds, err := Build(table, policy, batchSize)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return ds
}
