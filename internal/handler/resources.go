package handler

import (
	"time"

	"shop-admin-api/internal/attachment"
	"shop-admin-api/internal/calendar"
	"shop-admin-api/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Presenter turns models into API resources
type Presenter struct {
	products *attachment.Manager
	sliders  *attachment.Manager
	cal      calendar.Calendar
	printer  *message.Printer
	now      func() time.Time
}

func NewPresenter(products, sliders *attachment.Manager, cal calendar.Calendar, now func() time.Time) *Presenter {
	if now == nil {
		now = time.Now
	}
	return &Presenter{
		products: products,
		sliders:  sliders,
		cal:      cal,
		printer:  message.NewPrinter(language.English),
		now:      now,
	}
}

// money formats an amount without decimals and with thousands separators: 1234000 -> "1,234,000"
func (p *Presenter) money(d decimal.Decimal) string {
	return p.printer.Sprintf("%d", d.Round(0).IntPart())
}

type ImageResource struct {
	ID    uuid.UUID `json:"id"`
	Image string    `json:"image"`
}

type ProductResource struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	Slug           string           `json:"slug"`
	CategoryID     uuid.UUID        `json:"category_id"`
	CategoryName   string           `json:"category_name,omitempty"`
	PrimaryImage   string           `json:"primary_image"`
	Description    string           `json:"description"`
	Price          decimal.Decimal  `json:"price"`
	Quantity       int              `json:"quantity"`
	Status         bool             `json:"status"`
	SalePrice      *decimal.Decimal `json:"sale_price"`
	IsSale         bool             `json:"is_sale"`
	DateOnSaleFrom *string          `json:"date_on_sale_from"`
	DateOnSaleTo   *string          `json:"date_on_sale_to"`
	Images         []ImageResource  `json:"images"`
	CreatedAt      time.Time        `json:"created_at"`
}

func (p *Presenter) Product(m *model.Product) ProductResource {
	res := ProductResource{
		ID:             m.ID,
		Name:           m.Name,
		Slug:           m.Slug,
		CategoryID:     m.CategoryID,
		PrimaryImage:   p.products.URL(m.PrimaryImage),
		Description:    m.Description,
		Price:          m.Price,
		Quantity:       m.Quantity,
		Status:         m.Status,
		IsSale:         m.IsSale(p.now()),
		DateOnSaleFrom: p.localTime(m.DateOnSaleFrom),
		DateOnSaleTo:   p.localTime(m.DateOnSaleTo),
		Images:         make([]ImageResource, len(m.Images)),
		CreatedAt:      m.CreatedAt,
	}
	if m.Category != nil {
		res.CategoryName = m.Category.Name
	}
	if m.SalePrice.Valid {
		sale := m.SalePrice.Decimal
		res.SalePrice = &sale
	}
	for i, img := range m.Images {
		res.Images[i] = ImageResource{ID: img.ID, Image: p.products.URL(img.Image)}
	}
	return res
}

func (p *Presenter) localTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := p.cal.FormatDateTime(*t)
	return &s
}

type SliderResource struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Image       string    `json:"image"`
	LinkTitle   string    `json:"link_title"`
	LinkAddress string    `json:"link_address"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *Presenter) Slider(m *model.Slider) SliderResource {
	return SliderResource{
		ID:          m.ID,
		Title:       m.Title,
		Body:        m.Body,
		Image:       p.sliders.URL(m.Image),
		LinkTitle:   m.LinkTitle,
		LinkAddress: m.LinkAddress,
		CreatedAt:   m.CreatedAt,
	}
}

type CategoryResource struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Status    bool              `json:"status"`
	Products  []ProductResource `json:"products,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func (p *Presenter) Category(m *model.Category) CategoryResource {
	res := CategoryResource{ID: m.ID, Name: m.Name, Status: m.Status, CreatedAt: m.CreatedAt}
	for i := range m.Products {
		res.Products = append(res.Products, p.Product(&m.Products[i]))
	}
	return res
}

// CouponResource shows expires_at in the local calendar next to the stored instant
type CouponResource struct {
	ID                 uuid.UUID `json:"id"`
	Code               string    `json:"code"`
	Percent            int       `json:"percent"`
	ExpiresAt          string    `json:"expires_at"`
	ExpiresAtGregorian time.Time `json:"expires_at_gregorian"`
}

func (p *Presenter) Coupon(m *model.Discount) CouponResource {
	return CouponResource{
		ID:                 m.ID,
		Code:               m.Code,
		Percent:            m.Percent,
		ExpiresAt:          p.cal.FormatDateTime(m.ExpiresAt),
		ExpiresAtGregorian: m.ExpiresAt,
	}
}

type OrderItemResource struct {
	ProductImage    string `json:"product_image"`
	ProductName     string `json:"product_name"`
	ProductPrice    string `json:"product_price"`
	ProductQuantity int    `json:"product_quantity"`
	TotalPrice      string `json:"total_price"`
}

type OrderResource struct {
	ID             uuid.UUID           `json:"id"`
	UserID         uuid.UUID           `json:"user_id"`
	Address        *model.UserAddress  `json:"address"`
	Status         int                 `json:"status"`
	TotalAmount    string              `json:"total_amount"`
	DeliveryAmount string              `json:"delivery_amount"`
	CouponAmount   string              `json:"coupon_amount"`
	PayingAmount   string              `json:"paying_amount"`
	PaymentStatus  int                 `json:"payment_status"`
	Items          []OrderItemResource `json:"order_items"`
	CreatedAt      time.Time           `json:"created_at"`
}

func (p *Presenter) Order(m *model.Order) OrderResource {
	res := OrderResource{
		ID:             m.ID,
		UserID:         m.UserID,
		Address:        m.Address,
		Status:         m.Status,
		TotalAmount:    p.money(m.TotalAmount),
		DeliveryAmount: p.money(m.DeliveryAmount),
		CouponAmount:   p.money(m.CouponAmount),
		PayingAmount:   p.money(m.PayingAmount),
		PaymentStatus:  m.PaymentStatus,
		Items:          make([]OrderItemResource, len(m.Items)),
		CreatedAt:      m.CreatedAt,
	}
	for i, item := range m.Items {
		res.Items[i] = p.OrderItem(&item)
	}
	return res
}

func (p *Presenter) OrderItem(m *model.OrderItem) OrderItemResource {
	res := OrderItemResource{
		ProductPrice:    p.money(m.Price),
		ProductQuantity: m.Quantity,
		TotalPrice:      p.money(m.Subtotal),
	}
	if m.Product != nil {
		res.ProductImage = p.products.URL(m.Product.PrimaryImage)
		res.ProductName = m.Product.Name
	}
	return res
}

type TransactionResource struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	OrderID     uuid.UUID       `json:"order_id"`
	Amount      decimal.Decimal `json:"amount"`
	TransID     string          `json:"trans_id"`
	RequestFrom string          `json:"request_from"`
	Status      int             `json:"status"`
	CreatedAt   string          `json:"created_at"`
}

func (p *Presenter) Transaction(m *model.Transaction) TransactionResource {
	return TransactionResource{
		ID:          m.ID,
		UserID:      m.UserID,
		OrderID:     m.OrderID,
		Amount:      m.Amount,
		TransID:     m.TransID,
		RequestFrom: m.RequestFrom,
		Status:      m.Status,
		CreatedAt:   p.cal.FormatDateTime(m.CreatedAt),
	}
}

func (p *Presenter) User(m *model.User) model.UserResponse {
	return m.ToResponse()
}

func (p *Presenter) Role(m *model.Role) model.RoleResponse {
	return m.ToResponse()
}
