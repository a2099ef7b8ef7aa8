package commands

// BulkFailure is one id a bulk command could not apply.
type BulkFailure struct {
	ID  string
	Err error
}

// BulkResult reports per-id outcomes of a non-atomic bulk command.
type BulkResult struct {
	Succeeded []string
	Failed    []BulkFailure
}

func (r *BulkResult) record(id string, err error) {
	if err != nil {
		r.Failed = append(r.Failed, BulkFailure{ID: id, Err: err})
		return
	}
	r.Succeeded = append(r.Succeeded, id)
}
