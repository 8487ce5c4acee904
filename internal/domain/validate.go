package domain

// Validate checks a candidate order before it is allowed into storage.
// Checks run in a fixed order and stop at the first failure, so callers
// always get exactly one reason. Pure function, no side effects.
func Validate(o *Order) error {
	if o.OrderUID == "" {
		return &ValidationError{Reason: "order_uid is required"}
	}
	if o.TrackNumber == "" {
		return &ValidationError{Reason: "track_number is required"}
	}
	if o.Entry == "" {
		return &ValidationError{Reason: "entry is required"}
	}
	d := o.Delivery
	if d.Name == "" || d.Phone == "" || d.Zip == "" || d.City == "" ||
		d.Address == "" || d.Region == "" || d.Email == "" {
		return &ValidationError{Reason: "all delivery fields are required"}
	}
	p := o.Payment
	if p.Transaction == "" || p.Currency == "" || p.Provider == "" || p.Amount <= 0 {
		return &ValidationError{Reason: "all payment fields are required and amount must be positive"}
	}
	if len(o.Items) == 0 {
		return &ValidationError{Reason: "at least one item is required"}
	}
	for _, it := range o.Items {
		if it.ChrtID <= 0 || it.Price <= 0 || it.RID == "" || it.Name == "" || it.Brand == "" {
			return &ValidationError{Reason: "all item fields are required and numeric fields must be positive"}
		}
	}
	return nil
}
