package booking

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/vincibarbearia/app-agendamento/internal/gateway"
	"github.com/vincibarbearia/app-agendamento/internal/httperr"
	"github.com/vincibarbearia/app-agendamento/internal/models"
	"github.com/vincibarbearia/app-agendamento/internal/store"
)

// The sentinel the selection screen uses for "any professional". It is
// never sent upstream as a filter; the backend auto-assigns.
const AnyProfessional = "Qualquer"

// Gateway is the slice of the upstream client the workflow needs.
type Gateway interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListPlans(ctx context.Context) ([]models.Plan, error)
	ListProfessionals(ctx context.Context) ([]models.Professional, error)
	AvailableTimes(ctx context.Context, date, professionalName string, serviceIDs []string) []string
	CreateBooking(ctx context.Context, req gateway.CreateBookingRequest) gateway.SubmitResult
	CreatePurchase(ctx context.Context, req gateway.CreatePurchaseRequest) gateway.SubmitResult
}

// Workflow reconciles a mixed-kind cart into the correct sequence of
// availability queries and booking/purchase submissions.
type Workflow struct {
	carts    *store.CartStore
	api      Gateway
	log      *zap.Logger
	sessions *sessionSet
}

func NewWorkflow(carts *store.CartStore, api Gateway, logger *zap.Logger) *Workflow {
	return &Workflow{
		carts:    carts,
		api:      api,
		log:      logger,
		sessions: newSessionSet(),
	}
}

func (w *Workflow) Cart(ctx context.Context, customerID string) []models.CartItem {
	return w.carts.Load(ctx, customerID)
}

func (w *Workflow) Toggle(ctx context.Context, customerID string, item models.CartItem) ([]models.CartItem, error) {
	return w.carts.Toggle(ctx, customerID, item)
}

func (w *Workflow) ClearCart(ctx context.Context, customerID string) error {
	return w.carts.Clear(ctx, customerID)
}

func (w *Workflow) SessionState(customerID string) State {
	return w.sessions.get(customerID).current()
}

func (w *Workflow) Back(customerID string) error {
	return w.sessions.get(customerID).back()
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

// LoadCatalog fetches services, products, plans and professionals jointly.
// A failure in any one of them aborts the whole load; no partial catalog
// is ever returned.
func (w *Workflow) LoadCatalog(ctx context.Context) (models.Catalog, error) {
	var (
		catalog models.Catalog
		wg      sync.WaitGroup
		mu      sync.Mutex
		loadErr error
	)

	fail := func(err error) {
		mu.Lock()
		if loadErr == nil {
			loadErr = err
		}
		mu.Unlock()
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		services, err := w.api.ListServices(ctx)
		if err != nil {
			fail(err)
			return
		}
		catalog.Services = services
	}()
	go func() {
		defer wg.Done()
		products, err := w.api.ListProducts(ctx)
		if err != nil {
			fail(err)
			return
		}
		catalog.Products = products
	}()
	go func() {
		defer wg.Done()
		plans, err := w.api.ListPlans(ctx)
		if err != nil {
			fail(err)
			return
		}
		catalog.Plans = plans
	}()
	go func() {
		defer wg.Done()
		professionals, err := w.api.ListProfessionals(ctx)
		if err != nil {
			fail(err)
			return
		}
		catalog.Professionals = professionals
	}()
	wg.Wait()

	if loadErr != nil {
		w.log.Warn("catalog load aborted", zap.Error(loadErr))
		return models.Catalog{}, httperr.ErrBusinessMsg("catalog_unavailable", "Erro ao carregar dados")
	}
	return catalog, nil
}

// --------------------------------------------------
// Proceed
// --------------------------------------------------

type Step string

const (
	StepScheduling Step = "agendamento"
	StepPurchase   Step = "compra"
)

type ProceedOutcome struct {
	Step     Step     `json:"etapa"`
	Purchase *Outcome `json:"compra,omitempty"`
}

// Proceed decides whether the customer goes to scheduling or straight to
// checkout. A pure-product cart is purchased immediately, without any
// availability query.
func (w *Workflow) Proceed(ctx context.Context, customer models.Customer) (ProceedOutcome, error) {
	items := w.carts.Load(ctx, customer.ID)
	if len(items) == 0 {
		return ProceedOutcome{}, httperr.ErrBusinessMsg("empty_cart", "Selecione pelo menos um item")
	}

	snap := models.Classify(items)

	if snap.IsPureProductPurchase {
		outcome, err := w.Purchase(ctx, customer)
		if err != nil {
			return ProceedOutcome{}, err
		}
		return ProceedOutcome{Step: StepPurchase, Purchase: &outcome}, nil
	}

	// Catalog-emptiness check, not an availability check: without any
	// bookable professional there is nothing to schedule against. A
	// transport failure is not an empty catalog and gets the generic
	// retry message instead.
	professionals, err := w.api.ListProfessionals(ctx)
	if err != nil {
		w.log.Warn("professionals load failed", zap.Error(err))
		return ProceedOutcome{}, httperr.ErrBusinessMsg("professionals_unavailable", "Erro ao carregar dados. Tente novamente.")
	}
	if len(professionals) == 0 {
		return ProceedOutcome{}, httperr.ErrBusinessMsg(
			"no_professionals",
			"Nenhum profissional disponível no momento. Entre em contato com a barbearia.",
		)
	}

	if err := w.sessions.get(customer.ID).toScheduling(); err != nil {
		return ProceedOutcome{}, err
	}
	return ProceedOutcome{Step: StepScheduling}, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

// FetchSlots queries availability for one date and partitions the result
// into display buckets. A cart without services or plans never reaches the
// backend and yields no slots.
func (w *Workflow) FetchSlots(ctx context.Context, customerID, date, professionalID string) []SlotBucket {
	items := w.carts.Load(ctx, customerID)
	snap := models.Classify(items)

	if !snap.HasServices && !snap.HasPlans {
		return []SlotBucket{}
	}

	// The upstream availability endpoint filters by professional NAME.
	// The "any professional" sentinel is never sent.
	name := ""
	if professionalID != "" && professionalID != AnyProfessional {
		if professionals, err := w.api.ListProfessionals(ctx); err == nil {
			for _, p := range professionals {
				if p.ID == professionalID {
					name = p.Name
					break
				}
			}
		}
	}

	// Plan-only carts have no fixed service duration; servico_ids is
	// omitted entirely.
	var serviceIDs []string
	for _, it := range items {
		if it.Kind == models.KindService {
			serviceIDs = append(serviceIDs, it.ID)
		}
	}

	times := w.api.AvailableTimes(ctx, date, name, serviceIDs)
	return BucketTimes(times)
}

// --------------------------------------------------
// Submission
// --------------------------------------------------

type ConfirmRequest struct {
	Date           string // YYYY-MM-DD, from the picker
	Time           string // HH:MM
	ProfessionalID string // empty or AnyProfessional delegates assignment
}

type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Confirm submits the scheduled booking. On success the cart is cleared;
// on failure it is left intact so the customer can retry.
func (w *Workflow) Confirm(ctx context.Context, customer models.Customer, req ConfirmRequest) (Outcome, error) {
	if req.Date == "" || req.Time == "" {
		return Outcome{}, httperr.ErrBusinessMsg("missing_date_time", "Selecione data e horário")
	}

	items := w.carts.Load(ctx, customer.ID)
	snap := models.Classify(items)

	// A plan without services books its first session; that session must
	// be tied to a concrete professional.
	concrete := req.ProfessionalID != "" && req.ProfessionalID != AnyProfessional
	if snap.HasPlans && !snap.HasServices && !concrete {
		return Outcome{}, httperr.ErrBusinessMsg("missing_professional", "Selecione um profissional")
	}

	sess := w.sessions.get(customer.ID)
	if err := sess.beginSubmit(StateScheduling); err != nil {
		return Outcome{}, err
	}

	serviceIDs := itemIDs(items, models.KindService)
	productIDs := itemIDs(items, models.KindProduct)
	planIDs := itemIDs(items, models.KindPlan)

	bookingReq := gateway.CreateBookingRequest{
		CustomerName: customer.FullName,
		Phone:        customer.Phone,
		Date:         WireDate(req.Date),
		Time:         req.Time,
		ServiceIDs:   serviceIDs,
		ProductIDs:   productIDs,
		PlanIDs:      planIDs,
	}
	if concrete {
		bookingReq.ProfessionalID = req.ProfessionalID
	}

	result := w.api.CreateBooking(ctx, bookingReq)
	if !result.Success {
		sess.set(StateScheduling)
		msg := result.Error
		if msg == "" {
			msg = "Erro ao criar agendamento"
		}
		return Outcome{Success: false, Message: msg}, nil
	}

	if err := w.carts.Clear(ctx, customer.ID); err != nil {
		w.log.Warn("clearing cart after booking failed", zap.String("customer_id", customer.ID), zap.Error(err))
	}
	sess.set(StateDone)

	msg := "Agendamento criado com sucesso!"
	if len(planIDs) > 0 && len(serviceIDs) == 0 {
		msg = "Pacote adquirido! Primeira sessão agendada com sucesso!"
	}
	return Outcome{Success: true, Message: msg}, nil
}

// Purchase submits a direct purchase, the pure-product path with no
// scheduling involved. A cart holding any service or plan must go through
// scheduling and is refused here.
func (w *Workflow) Purchase(ctx context.Context, customer models.Customer) (Outcome, error) {
	items := w.carts.Load(ctx, customer.ID)
	if len(items) == 0 {
		return Outcome{}, httperr.ErrBusinessMsg("empty_cart", "Selecione pelo menos um item")
	}

	if !models.Classify(items).IsPureProductPurchase {
		return Outcome{}, httperr.ErrBusinessMsg("cart_requires_scheduling", "Serviços e planos exigem agendamento")
	}

	sess := w.sessions.get(customer.ID)
	if err := sess.beginSubmit(StateSelection, StateDone); err != nil {
		return Outcome{}, err
	}

	result := w.api.CreatePurchase(ctx, gateway.CreatePurchaseRequest{
		CustomerName: customer.FullName,
		Phone:        customer.Phone,
		ProductIDs:   itemIDs(items, models.KindProduct),
		PlanIDs:      itemIDs(items, models.KindPlan),
	})
	if !result.Success {
		sess.set(StateSelection)
		msg := result.Error
		if msg == "" {
			msg = "Erro ao processar compra"
		}
		return Outcome{Success: false, Message: msg}, nil
	}

	if err := w.carts.Clear(ctx, customer.ID); err != nil {
		w.log.Warn("clearing cart after purchase failed", zap.String("customer_id", customer.ID), zap.Error(err))
	}
	sess.set(StateDone)

	return Outcome{Success: true, Message: "Compra realizada com sucesso! Retire na barbearia."}, nil
}

func itemIDs(items []models.CartItem, kind models.ItemKind) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if it.Kind == kind {
			ids = append(ids, it.ID)
		}
	}
	return ids
}
