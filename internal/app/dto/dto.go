package dto

import "time"

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationErrorResponse — ответ 400 на невалидную форму
type ValidationErrorResponse struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// ============ Статьи (CMS proxy) ============

type ArticleResponse struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Excerpt     string    `json:"excerpt"`
	Body        string    `json:"body,omitempty"`
	CoverImage  string    `json:"cover_image,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
}

// ============ Контактная форма ============

type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=2"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"omitempty"`
	Subject string `json:"subject" binding:"required,min=3"`
	Message string `json:"message" binding:"required,min=10"`
}

type ContactResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SubmissionID string `json:"submissionId"`
}

// ============ Комментарии ============

type CommentRequest struct {
	ArticleID string `json:"articleId" binding:"required"`
	Name      string `json:"name" binding:"required,min=2"`
	Email     string `json:"email" binding:"required,email"`
	Content   string `json:"content" binding:"required,min=5"`
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	ArticleID string    `json:"articleId"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
}

type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
	Total    int               `json:"total"`
}

// ============ Калькулятор квот ============

// Границы числовых полей — те самые min/max ограничения слоя ввода:
// ценовой функции невалидные значения не достаются.

type AppParams struct {
	Platforms  []string `json:"platforms" binding:"required,min=1,dive,oneof=ios android web"`
	Screens    int      `json:"screens" binding:"required,min=1,max=100"`
	Complexity string   `json:"complexity" binding:"required,oneof=simple medium complex"`
	Features   []string `json:"features" binding:"omitempty,dive,oneof=auth payments notifications analytics chat maps ai api"`
}

type WebsiteParams struct {
	Pages    int      `json:"pages" binding:"required,min=1,max=200"`
	Type     string   `json:"type" binding:"required,oneof=landing corporate ecommerce"`
	Features []string `json:"features" binding:"omitempty,dive,oneof=seo cms multilang blog contact booking payments analytics"`
}

type SocialParams struct {
	Platforms     int  `json:"platforms" binding:"required,min=1,max=10"`
	PostsPerMonth int  `json:"postsPerMonth" binding:"required,min=1,max=120"`
	Design        bool `json:"design"`
	Ads           bool `json:"ads"`
}

type QuoteCalcRequest struct {
	Service string         `json:"service" binding:"required,oneof=app website social"`
	App     *AppParams     `json:"app"`
	Website *WebsiteParams `json:"website"`
	Social  *SocialParams  `json:"social"`
}

type QuoteCalcResponse struct {
	Service   string  `json:"service"`
	Base      float64 `json:"base"`
	Surcharge int     `json:"surcharge"`
	Total     int     `json:"total"`
	Currency  string  `json:"currency"`
	// Recurring: для social итог ежемесячный, для остальных разовый
	Recurring bool   `json:"recurring"`
	QuoteID   string `json:"quoteId"`
}

// ============ Оформление компании (order intake) ============

type IntakeMemberData struct {
	FullName         string `json:"fullName" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required"`
	DateOfBirth      string `json:"dateOfBirth" binding:"required"`
	Country          string `json:"country" binding:"required"`
	Address          string `json:"address"`
	OwnershipPercent int    `json:"ownershipPercent" binding:"min=0,max=100"`
}

type IntakeFormData struct {
	AddOns           []string           `json:"addOns"`
	CompanyNames     []string           `json:"companyNames" binding:"required,len=3,dive,required"`
	BusinessType     string             `json:"businessType"`
	BusinessPurpose  string             `json:"businessPurpose" binding:"required"`
	Members          []IntakeMemberData `json:"members" binding:"required,min=1,max=4,dive"`
	ManagementType   string             `json:"managementType"`
	MailForwarding   bool               `json:"mailForwarding"`
	VirtualOffice    bool               `json:"virtualOffice"`
	ComplianceAlerts bool               `json:"complianceAlerts"`
	TermsAccepted    bool               `json:"termsAccepted"`
	PrivacyAccepted  bool               `json:"privacyAccepted"`
}

type OrderIntakeRequest struct {
	OrderID     string         `json:"orderId"` // выдается сервером, если пустой
	ProductType string         `json:"productType" binding:"required"`
	Package     string         `json:"package" binding:"required,oneof=basic standard premium"`
	FormData    IntakeFormData `json:"formData" binding:"required"`
	TotalAmount int            `json:"totalAmount" binding:"required,gt=0"`
	SubmittedAt time.Time      `json:"submittedAt"`
}

type OrderIntakeResponse struct {
	Success     bool   `json:"success"`
	OrderID     string `json:"orderId"`
	TotalAmount int    `json:"totalAmount"`
	Message     string `json:"message"`
}

// ============ Портал: заказы пользователя ============

type PortalOrderResponse struct {
	OrderID     string    `json:"orderId"`
	Package     string    `json:"package"`
	AddOns      []string  `json:"addOns"`
	CompanyName string    `json:"companyName"`
	TotalAmount int       `json:"totalAmount"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
	MemberCount int       `json:"memberCount"`
}

type PortalOrderListResponse struct {
	Orders []PortalOrderResponse `json:"orders"`
	Total  int                   `json:"total"`
}

// ============ Checkout-сессии ============

type CheckoutSessionRequest struct {
	OrderID       string   `json:"orderId" binding:"required"`
	Package       string   `json:"package" binding:"required,oneof=basic standard premium"`
	AddOns        []string `json:"addOns"`
	TotalAmount   int      `json:"totalAmount" binding:"required,gt=0"`
	CustomerEmail string   `json:"customerEmail" binding:"required,email"`
	CustomerName  string   `json:"customerName" binding:"required"`
}

type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

// ============ Аутентификация портала ============

type MagicLinkRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyRequest struct {
	Token string `json:"token" binding:"required"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type VerifyResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresIn int          `json:"expires_in"`
	User      UserResponse `json:"user"`
}
