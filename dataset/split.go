package dataset

// SplitTarget returns every column except target as the feature table and
// target itself as the target column. Both stay row-aligned with t.
func SplitTarget(t *Table, target string) (*Table, *Column, error) {
	y, err := t.Column(target)
	if err != nil {
		return nil, nil, err
	}
	X, err := t.Drop(target)
	if err != nil {
		return nil, nil, err
	}
	return X, y, nil
}
