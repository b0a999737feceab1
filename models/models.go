package models

// --- Clients & Pets ---

// Client represents a pet owner registered with the clinic.
type Client struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Pets    []Pet  `json:"pets"`
}

// Pet belongs to a client.
type Pet struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Species   string `json:"species"`
	Breed     string `json:"breed"`
	BirthDate string `json:"birthDate"`
	OwnerID   int    `json:"ownerId"`
}

// --- Appointments ---

// Appointment status values. Stored as-is, the frontend displays them
// verbatim.
const (
	AppointmentScheduled = "Agendado"
	AppointmentCompleted = "Concluído"
	AppointmentCanceled  = "Cancelado"
)

// Appointment is a scheduled visit for a pet.
type Appointment struct {
	ID       int     `json:"id"`
	ClientID int     `json:"clientId"`
	PetID    int     `json:"petId"`
	Date     string  `json:"date"`
	Reason   string  `json:"reason"`
	Notes    *string `json:"notes,omitempty"`
	Status   string  `json:"status"`
}

// AppointmentStatusUpdate is the body for the status transition endpoint.
type AppointmentStatusUpdate struct {
	Status string `json:"status"`
}

// --- Inventory ---

// Product is a physical item the clinic sells. Stock is decremented when a
// sale completes.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// ProductUpdate names only the optionally-present fields of a partial
// product update. Nil fields are left untouched.
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
}

// Service is a billable procedure (consultation, grooming, vaccine
// application). Services carry no stock.
type Service struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ServiceUpdate is the partial-update body for a service.
type ServiceUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// --- Point of sale ---

// Sale is a completed point-of-sale transaction.
type Sale struct {
	ID    int        `json:"id"`
	Total float64    `json:"total"`
	Date  string     `json:"date"`
	Items []SaleItem `json:"items"`
}

// SaleItem is a single line of a sale. Exactly one of ProductID or
// ServiceID is expected to be set; a nil ProductID means the line is a
// service and does not move stock.
type SaleItem struct {
	ID        int     `json:"id"`
	SaleID    int     `json:"sale_id"`
	ProductID *int    `json:"product_id,omitempty"`
	ServiceID *int    `json:"service_id,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// CreateSaleInput defines the expected input for creating a new sale.
type CreateSaleInput struct {
	Total float64               `json:"total"`
	Date  string                `json:"date"`
	Items []CreateSaleItemInput `json:"items"`
}

// CreateSaleItemInput is one line of a new sale.
type CreateSaleItemInput struct {
	ProductID *int    `json:"product_id,omitempty"`
	ServiceID *int    `json:"service_id,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
