package purchase

import (
	"time"
)

// Purchase is append-only: once accepted it is never updated or deleted.
type Purchase struct {
	username  Username
	userID    UserID
	price     Price
	timestamp time.Time
}

func New(username, userID string, price float64, ts time.Time) (*Purchase, error) {
	u, err := NewUsername(username)
	if err != nil {
		return nil, err
	}

	id, err := NewUserID(userID)
	if err != nil {
		return nil, err
	}

	p, err := NewPrice(price)
	if err != nil {
		return nil, err
	}

	return &Purchase{
		username:  u,
		userID:    id,
		price:     p,
		timestamp: ts.UTC(),
	}, nil
}

// Reconstruct rebuilds a Purchase from trusted data without applying business rules.
func Reconstruct(username, userID string, price float64, ts time.Time) *Purchase {
	return &Purchase{
		username:  Username{value: username},
		userID:    UserID{value: userID},
		price:     Price{value: price},
		timestamp: ts.UTC(),
	}
}

func (p *Purchase) Username() string     { return p.username.String() }
func (p *Purchase) UserID() string       { return p.userID.String() }
func (p *Purchase) Price() float64       { return p.price.Value() }
func (p *Purchase) Timestamp() time.Time { return p.timestamp }

// Key is the stream partition key.
func (p *Purchase) Key() []byte { return []byte(p.userID.String()) }
