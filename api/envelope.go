package api

import (
	"errors"
	"fmt"
)

// Responses from the node carry no discriminant: a body is either the
// expected success object or {"error": ..., "message": ...}. Each envelope
// tries its success shape first and falls back to the error shape.

// decodeEnvelope fills success from the member named key, or kerr from an
// error object. A body matching neither shape is an error.
func decodeEnvelope(data []byte, key string, success any, kerr **KristError) error {
	f, err := decodeFields(data)
	if err != nil {
		return err
	}

	successErr := f.required(success, key)
	if successErr == nil {
		return nil
	}

	var e KristError
	errorErr := f.required(&e.Code, "error")
	if errorErr == nil {
		errorErr = f.required(&e.Message, "message")
	}
	if errorErr == nil {
		*kerr = &e
		return nil
	}

	return fmt.Errorf("body matches neither the %q shape nor the error shape: %w",
		key, errors.Join(successErr, errorErr))
}

type addressResponse struct {
	address Address
	err     *KristError
}

func (r *addressResponse) UnmarshalJSON(data []byte) error {
	return decodeEnvelope(data, "address", &r.address, &r.err)
}

func (r *addressResponse) extract() (*Address, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &r.address, nil
}

type addressListResponse struct {
	addresses []Address
	err       *KristError
}

func (r *addressListResponse) UnmarshalJSON(data []byte) error {
	return decodeEnvelope(data, "addresses", &r.addresses, &r.err)
}

func (r *addressListResponse) extract() ([]Address, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.addresses, nil
}

type transactionListResponse struct {
	transactions []Transaction
	err          *KristError
}

func (r *transactionListResponse) UnmarshalJSON(data []byte) error {
	return decodeEnvelope(data, "transactions", &r.transactions, &r.err)
}

func (r *transactionListResponse) extract() ([]Transaction, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.transactions, nil
}
