package models

type ItemKind string

const (
	KindService ItemKind = "servico"
	KindProduct ItemKind = "produto"
	KindPlan    ItemKind = "plano"
)

// CartItem lives in the customer's persisted cart. Uniqueness key is
// (ID, Kind); display order is insertion order.
type CartItem struct {
	ID              string   `json:"id"`
	Kind            ItemKind `json:"tipo"`
	Name            string   `json:"nome"`
	Price           float64  `json:"preco"`
	DurationMinutes int      `json:"duracao,omitempty"`
}

// CartSnapshot is derived on every read and never persisted.
type CartSnapshot struct {
	HasServices           bool `json:"tem_servicos"`
	HasPlans              bool `json:"tem_planos"`
	HasProducts           bool `json:"tem_produtos"`
	IsPureProductPurchase bool `json:"apenas_produtos"`
}

func Classify(items []CartItem) CartSnapshot {
	var snap CartSnapshot
	for _, it := range items {
		switch it.Kind {
		case KindService:
			snap.HasServices = true
		case KindPlan:
			snap.HasPlans = true
		case KindProduct:
			snap.HasProducts = true
		}
	}
	snap.IsPureProductPurchase = snap.HasProducts && !snap.HasServices && !snap.HasPlans
	return snap
}
