package purchase

import (
	"encoding/json"
	"strings"
	"time"

	"purchase-pipeline/internal/pkg/errs"
)

// Event is the wire form published to the stream.
type Event struct {
	Username  string    `json:"username"`
	UserID    string    `json:"userid"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

type rawEvent struct {
	Username  *string    `json:"username"`
	UserID    *string    `json:"userid"`
	Price     *float64   `json:"price"`
	Timestamp *time.Time `json:"timestamp"`
}

func (p *Purchase) ToEvent() Event {
	return Event{
		Username:  p.Username(),
		UserID:    p.UserID(),
		Price:     p.Price(),
		Timestamp: p.Timestamp(),
	}
}

func (p *Purchase) MarshalEvent() ([]byte, error) {
	b, err := json.Marshal(p.ToEvent())
	if err != nil {
		return nil, errs.Wrap(err, "marshal purchase event")
	}
	return b, nil
}

// DecodeEvent checks presence of the required fields only; a missing timestamp becomes now.
func DecodeEvent(payload []byte, now time.Time) (*Purchase, error) {
	var raw rawEvent
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "unmarshal purchase event"), ErrDecode)
	}

	switch {
	case raw.Username == nil || strings.TrimSpace(*raw.Username) == "":
		return nil, errs.Mark(errs.Wrap(ErrEmptyUsername, "decode purchase event"), ErrDecode)
	case raw.UserID == nil || strings.TrimSpace(*raw.UserID) == "":
		return nil, errs.Mark(errs.Wrap(ErrEmptyUserID, "decode purchase event"), ErrDecode)
	case raw.Price == nil:
		return nil, errs.Mark(errs.Wrap(ErrInvalidPrice, "decode purchase event"), ErrDecode)
	}

	ts := now
	if raw.Timestamp != nil && !raw.Timestamp.IsZero() {
		ts = *raw.Timestamp
	}

	return Reconstruct(strings.TrimSpace(*raw.Username), strings.TrimSpace(*raw.UserID), *raw.Price, ts), nil
}
