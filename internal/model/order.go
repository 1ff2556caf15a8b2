package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ==================== 订单状态 ====================

const (
	OrderStatusPending        = "Pending"
	OrderStatusConfirmed      = "Confirmed"
	OrderStatusProcessing     = "Processing"
	OrderStatusShipped        = "Shipped"
	OrderStatusOutForDelivery = "Out for Delivery"
	OrderStatusDelivered      = "Delivered"
	OrderStatusCancelled      = "Cancelled"
	OrderStatusRefunded       = "Refunded"
	OrderStatusFailed         = "Failed"
)

// OrderStatuses 下拉可选状态，顺序即展示顺序
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusRefunded,
	OrderStatusFailed,
}

// IsOrderStatus 是否为已知订单状态
func IsOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ==================== 支付状态 ====================

const (
	PaymentStatusPaid              = "Paid"
	PaymentStatusPending           = "Pending"
	PaymentStatusFailed            = "Failed"
	PaymentStatusRefunded          = "Refunded"
	PaymentStatusPartiallyRefunded = "Partially Refunded"
)

// ==================== 退货状态 ====================

const (
	ReturnStatusPending   = "Pending"
	ReturnStatusApproved  = "Approved"
	ReturnStatusRejected  = "Rejected"
	ReturnStatusCompleted = "Completed"
)

// CustomDesign 定制设计图
type CustomDesign struct {
	DesignImageURL   string `json:"designImageUrl,omitempty"`
	OriginalImageURL string `json:"originalImageUrl,omitempty"`
}

// OrderItem 订单行
type OrderItem struct {
	ID              string          `json:"_id,omitempty"`
	ProductID       Ref             `json:"productId"`
	CollectionID    Ref             `json:"collectionId"`
	ProductName     string          `json:"productName,omitempty"`
	Name            string          `json:"name,omitempty"`
	CollectionName  string          `json:"collectionName,omitempty"`
	ItemType        string          `json:"itemType,omitempty"`
	Level           int             `json:"level,omitempty"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	Image           string          `json:"image,omitempty"`
	ProductImage    string          `json:"productImage,omitempty"`
	CollectionImage string          `json:"collectionImage,omitempty"`
	CustomDesign    *CustomDesign   `json:"customDesign,omitempty"`
	PhoneModel      string          `json:"phoneModel,omitempty"`
	SelectedBrand   string          `json:"selectedBrand,omitempty"`
	SelectedModel   string          `json:"selectedModel,omitempty"`
	Color           string          `json:"color,omitempty"`
	Size            string          `json:"size,omitempty"`
	Reason          string          `json:"reason,omitempty"`
}

// Plate 游戏合集附加底板
type Plate struct {
	CollectionID    Ref             `json:"collectionId"`
	CollectionName  string          `json:"collectionName,omitempty"`
	CollectionImage string          `json:"collectionImage,omitempty"`
	Quantity        int             `json:"quantity"`
	PricePerPlate   decimal.Decimal `json:"pricePerPlate"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	Reason          string          `json:"reason,omitempty"`
}

// ReturnRequest 退货申请
type ReturnRequest struct {
	IsRequested bool        `json:"isRequested"`
	Status      string      `json:"status,omitempty"`
	Items       []OrderItem `json:"items,omitempty"`
	Plates      []Plate     `json:"plates,omitempty"`
	AdminNote   string      `json:"adminNote,omitempty"`
	RequestedAt *time.Time  `json:"requestedAt,omitempty"`
}

// ShippingAddress 收货地址
type ShippingAddress struct {
	FullName    string `json:"fullName,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	AddressLine string `json:"addressLine,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	ZipCode     string `json:"zipCode,omitempty"`
	Country     string `json:"country,omitempty"`
}

// AppliedCoupon 已使用优惠券
type AppliedCoupon struct {
	Code     string          `json:"code"`
	Discount decimal.Decimal `json:"discount"`
}

// Order 订单
// 状态流转由后端校验，这里不维护状态机
type Order struct {
	ID                string           `json:"_id"`
	OrderID           string           `json:"orderId,omitempty"`
	OrderNumber       string           `json:"orderNumber,omitempty"`
	UserID            Ref              `json:"userId"`
	Items             []OrderItem      `json:"items"`
	Plates            []Plate          `json:"plates,omitempty"`
	Status            string           `json:"status"`
	PaymentStatus     string           `json:"paymentStatus,omitempty"`
	PaymentMethod     string           `json:"paymentMethod,omitempty"`
	TransactionID     string           `json:"transactionId,omitempty"`
	RazorpayPaymentID string           `json:"razorpayPaymentId,omitempty"`
	TrackingNumber    string           `json:"trackingNumber,omitempty"`
	TrackingLink      string           `json:"trackingLink,omitempty"`
	CourierPartner    string           `json:"courierPartner,omitempty"`
	ReturnRequest     *ReturnRequest   `json:"returnRequest,omitempty"`
	ShippingAddress   *ShippingAddress `json:"shippingAddress,omitempty"`
	Subtotal          decimal.Decimal  `json:"subtotal"`
	Discount          decimal.Decimal  `json:"discount"`
	ShippingCost      decimal.Decimal  `json:"shippingCost"`
	TotalAmount       decimal.Decimal  `json:"totalAmount"`
	AppliedCoupons    []AppliedCoupon  `json:"appliedCoupons,omitempty"`
	CreatedAt         *time.Time       `json:"createdAt,omitempty"`
	ShippedAt         *time.Time       `json:"shippedAt,omitempty"`
}

// TrackingInfo 物流信息
type TrackingInfo struct {
	OrderID        string `json:"orderId"`
	TrackingNumber string `json:"trackingNumber"`
	CourierPartner string `json:"courierPartner"`
	TrackingLink   string `json:"trackingLink"`
}
