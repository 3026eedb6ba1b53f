package coordinator

import (
	"sync"

	"paydeck/app/models"
)

// Store is the capability the coordinator needs from the record store:
// list, create, delete. The GORM payment repository satisfies it; tests
// substitute an in-memory fake.
type Store interface {
	List() ([]models.Payment, error)
	Create(payment *models.Payment) error
	Delete(id string) error
}

// InverseKind names the mutation that reverses a performed action.
type InverseKind string

const (
	// KindDelete removes the record that an add created.
	KindDelete InverseKind = "delete"
	// KindRecreate re-inserts the record that a delete removed.
	KindRecreate InverseKind = "recreate"
)

// Inverse describes the undo of a completed mutation as plain data, so the
// caller can store it (e.g. in a session) and invoke it later without
// holding on to stale closures.
type Inverse struct {
	Kind   InverseKind     `json:"kind"`
	ID     string          `json:"id,omitempty"`
	Record *models.Payment `json:"record,omitempty"`
}

// Outcome is the result of a settled mutation: the refreshed collection,
// the sequence number of the refresh that produced it, and the offered
// inverse action.
type Outcome struct {
	Records []models.Payment
	Seq     uint64
	Inverse *Inverse
}

// Coordinator sequences each user-initiated mutation: perform the write,
// refresh the collection from the store, and hand back an inverse action
// descriptor. The held collection is a disposable cache; the store is the
// only source of truth.
//
// Mutations may overlap. Refreshes carry monotonically increasing sequence
// numbers and a stale refresh never overwrites a newer snapshot, so the
// displayed collection cannot move backwards when two in-flight refreshes
// resolve out of order.
type Coordinator struct {
	store Store

	mu      sync.Mutex
	nextSeq uint64
	applied uint64
	records []models.Payment
}

func New(store Store) *Coordinator {
	return &Coordinator{store: store}
}

// Records returns a copy of the last confirmed snapshot.
func (c *Coordinator) Records() []models.Payment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Payment(nil), c.records...)
}

// Refresh reloads the collection from the store without mutating anything.
func (c *Coordinator) Refresh() ([]models.Payment, uint64, error) {
	return c.refresh()
}

// SubmitAdd validates the candidate, persists it, and refreshes the
// collection. On any failure the held collection stays unchanged. The
// returned inverse deletes the record that was just created.
func (c *Coordinator) SubmitAdd(payment models.Payment) (Outcome, error) {
	if !models.IsValidStatus(payment.Status) {
		return Outcome{}, &models.InvalidStatusError{Status: payment.Status}
	}
	if err := payment.Validate(); err != nil {
		return Outcome{}, err
	}

	if err := c.store.Create(&payment); err != nil {
		return Outcome{}, err
	}

	records, seq, err := c.refresh()
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{
		Records: records,
		Seq:     seq,
		Inverse: &Inverse{Kind: KindDelete, ID: payment.ID},
	}, nil
}

// SubmitDelete removes the given record and refreshes the collection. The
// returned inverse re-inserts the record with its original id, amount,
// status and email. If the store later rejects the re-creation, the undo
// is reported as failed rather than silently dropped.
func (c *Coordinator) SubmitDelete(payment models.Payment) (Outcome, error) {
	if err := c.store.Delete(payment.ID); err != nil {
		return Outcome{}, err
	}

	records, seq, err := c.refresh()
	if err != nil {
		return Outcome{}, err
	}

	record := payment
	return Outcome{
		Records: records,
		Seq:     seq,
		Inverse: &Inverse{Kind: KindRecreate, Record: &record},
	}, nil
}

// Undo performs the inverse of a previously settled mutation and refreshes
// the collection.
func (c *Coordinator) Undo(inverse Inverse) (Outcome, error) {
	switch inverse.Kind {
	case KindDelete:
		if err := c.store.Delete(inverse.ID); err != nil {
			return Outcome{}, err
		}
	case KindRecreate:
		record := *inverse.Record
		if err := c.store.Create(&record); err != nil {
			return Outcome{}, err
		}
	default:
		return Outcome{}, &UnknownInverseError{Kind: inverse.Kind}
	}

	records, seq, err := c.refresh()
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Records: records, Seq: seq}, nil
}

// refresh lists the store and applies the result only if no newer refresh
// has settled in the meantime.
func (c *Coordinator) refresh() ([]models.Payment, uint64, error) {
	c.mu.Lock()
	c.nextSeq++
	seq := c.nextSeq
	c.mu.Unlock()

	records, err := c.store.List()
	if err != nil {
		return nil, seq, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq > c.applied {
		c.applied = seq
		c.records = append([]models.Payment(nil), records...)
	}
	return append([]models.Payment(nil), c.records...), seq, nil
}

// UnknownInverseError is returned when an inverse descriptor carries a
// kind the coordinator does not recognize.
type UnknownInverseError struct {
	Kind InverseKind
}

func (e *UnknownInverseError) Error() string {
	return "unknown inverse action kind: " + string(e.Kind)
}
