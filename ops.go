package memcache

import (
	"context"

	"github.com/pior/gometa/codec"
	"github.com/pior/gometa/meta"
)

// Set stores value under key, overwriting whatever was there.
func Set[T any](ctx context.Context, c *Client, key string, value T, cd codec.Codec[T], ttl meta.TTL) error {
	req := meta.NewSetRequest(key, cd.Encode(value), meta.ModeNone, ttl)
	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	switch resp.Status {
	case meta.StatusHD:
		return nil
	default:
		return &UnexpectedReturnCodeError{Op: "set", Status: resp.Status}
	}
}

// Add stores value under key only if it does not already exist,
// returning ErrKeyExists otherwise.
func Add[T any](ctx context.Context, c *Client, key string, value T, cd codec.Codec[T], ttl meta.TTL) error {
	req := meta.NewSetRequest(key, cd.Encode(value), meta.ModeAdd, ttl)
	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	switch resp.Status {
	case meta.StatusHD:
		return nil
	case meta.StatusNS:
		return ErrKeyExists
	default:
		return &UnexpectedReturnCodeError{Op: "add", Status: resp.Status}
	}
}

// Replace stores value under key only if it already exists, returning
// ErrKeyNotFound otherwise.
func Replace[T any](ctx context.Context, c *Client, key string, value T, cd codec.Codec[T], ttl meta.TTL) error {
	req := meta.NewSetRequest(key, cd.Encode(value), meta.ModeReplace, ttl)
	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	switch resp.Status {
	case meta.StatusHD:
		return nil
	case meta.StatusNS, meta.StatusNF:
		return ErrKeyNotFound
	default:
		return &UnexpectedReturnCodeError{Op: "replace", Status: resp.Status}
	}
}

// Append adds value after the existing data under key, returning
// ErrKeyNotFound if the key does not exist.
func Append[T any](ctx context.Context, c *Client, key string, value T, cd codec.Codec[T]) error {
	req := meta.NewSetRequest(key, cd.Encode(value), meta.ModeAppend, meta.NoTTL())
	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	return interpretStoredOrMissing("append", resp)
}

// Prepend adds value before the existing data under key, returning
// ErrKeyNotFound if the key does not exist.
func Prepend[T any](ctx context.Context, c *Client, key string, value T, cd codec.Codec[T]) error {
	req := meta.NewSetRequest(key, cd.Encode(value), meta.ModePrepend, meta.NoTTL())
	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	return interpretStoredOrMissing("prepend", resp)
}

func interpretStoredOrMissing(op string, resp *meta.Response) error {
	switch resp.Status {
	case meta.StatusHD:
		return nil
	case meta.StatusNS, meta.StatusNF:
		return ErrKeyNotFound
	default:
		return &UnexpectedReturnCodeError{Op: op, Status: resp.Status}
	}
}

// Get fetches and decodes the value stored under key. It returns ErrMiss
// if the key does not exist.
func Get[T any](ctx context.Context, c *Client, key string, cd codec.Codec[T]) (T, error) {
	var zero T
	req := meta.NewGetRequest(key)
	resp, err := c.do(ctx, req)
	if err != nil {
		return zero, err
	}
	switch resp.Status {
	case meta.StatusVA:
		v, err := cd.Decode(resp.Data)
		if err != nil {
			return zero, err
		}
		return v, nil
	case meta.StatusEN, meta.StatusHD:
		return zero, ErrMiss
	default:
		return zero, &UnexpectedReturnCodeError{Op: "get", Status: resp.Status}
	}
}

// Delete removes key, returning ErrKeyNotFound if it was not present.
func (c *Client) Delete(ctx context.Context, key string) error {
	req := meta.NewDeleteRequest(key)
	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	switch resp.Status {
	case meta.StatusHD:
		return nil
	case meta.StatusNF:
		return ErrKeyNotFound
	default:
		return &UnexpectedReturnCodeError{Op: "delete", Status: resp.Status}
	}
}

// Touch updates key's TTL without touching its value, returning
// ErrKeyNotFound if it does not exist.
func (c *Client) Touch(ctx context.Context, key string, ttl meta.TTL) error {
	req := meta.NewTouchRequest(key, ttl)
	resp, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	switch resp.Status {
	case meta.StatusHD:
		return nil
	case meta.StatusNF:
		return ErrKeyNotFound
	default:
		return &UnexpectedReturnCodeError{Op: "touch", Status: resp.Status}
	}
}

// Increment adds delta to the numeric value stored under key and returns
// the resulting value. It does not vivify a missing key; a caller that
// needs that reaches for meta.NewArithmeticRequest directly.
func (c *Client) Increment(ctx context.Context, key string, delta uint64) (uint64, error) {
	return c.arithmetic(ctx, "increment", key, meta.ModeIncrement, delta)
}

// Decrement subtracts delta from the numeric value stored under key
// (memcached clamps at zero rather than going negative) and returns the
// resulting value.
func (c *Client) Decrement(ctx context.Context, key string, delta uint64) (uint64, error) {
	return c.arithmetic(ctx, "decrement", key, meta.ModeDecrement, delta)
}

func (c *Client) arithmetic(ctx context.Context, op, key string, mode meta.Mode, delta uint64) (uint64, error) {
	req := meta.NewArithmeticRequest(key, mode, delta, nil, meta.NoTTL())
	resp, err := c.do(ctx, req)
	if err != nil {
		return 0, err
	}
	switch resp.Status {
	case meta.StatusVA:
		var numeric codec.Uint64
		v, err := numeric.Decode(resp.Data)
		if err != nil {
			return 0, err
		}
		return v, nil
	case meta.StatusNS, meta.StatusNF, meta.StatusEN:
		return 0, ErrKeyNotFound
	default:
		return 0, &UnexpectedReturnCodeError{Op: op, Status: resp.Status}
	}
}
