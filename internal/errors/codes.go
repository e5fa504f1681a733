package errors

// Error code constants returned in the "error" field of failure responses.
// Format: CATEGORY_SPECIFIC_DETAIL. The storefront maps these to copy.

const (
	// ==================== Authentication (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"       // login required
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // wrong email/password
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED" // logged out token
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"
	AuthAccountBlocked     = "AUTH_ACCOUNT_BLOCKED"
	AuthResetTokenExpired  = "AUTH_RESET_TOKEN_EXPIRED" // password reset token expired or unknown

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden    = "AUTHZ_FORBIDDEN"
	AuthzAdminOnly    = "AUTHZ_ADMIN_ONLY"
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// ==================== Resource (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Catalog (PRODUCT_) ====================
	ProductNotFound     = "PRODUCT_NOT_FOUND"
	ProductInvalidStar  = "PRODUCT_INVALID_STAR" // rating star out of 1..5
	ProductOutOfStock   = "PRODUCT_OUT_OF_STOCK"

	// ==================== Cart (CART_) ====================
	CartNotFound = "CART_NOT_FOUND"
	CartEmpty    = "CART_EMPTY"

	// ==================== Coupon (COUPON_) ====================
	CouponNotFound = "COUPON_NOT_FOUND"
	CouponExpired  = "COUPON_EXPIRED"

	// ==================== Order (ORDER_) ====================
	OrderNotFound             = "ORDER_NOT_FOUND"
	OrderInvalidPaymentMethod = "ORDER_INVALID_PAYMENT_METHOD"
	OrderInvalidStatus        = "ORDER_INVALID_STATUS"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError = "INTERNAL_SERVER_ERROR"
	InternalExternalAPI = "INTERNAL_EXTERNAL_API"
)
