package dto

// LoginRequest credentials for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest body for POST /api/customers (self-service signup).
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// CreateAdminRequest body for POST /api/admins.
type CreateAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Status   string `json:"status,omitempty"`
}

// CreateProviderRequest body for POST /api/providers.
type CreateProviderRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	ServiceType string `json:"service_type,omitempty"`
	Area        string `json:"area,omitempty"`
}

// CreateCourierRequest body for POST /api/couriers.
type CreateCourierRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Area     string `json:"area,omitempty"`
	Vehicle  string `json:"vehicle,omitempty"`
}

// UpdateAccountRequest body for PUT /api/users/:id. Only non-nil fields are
// applied; which of them take effect depends on the account's role.
type UpdateAccountRequest struct {
	Name        *string  `json:"name,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Status      *string  `json:"status,omitempty"`
	ServiceType *string  `json:"service_type,omitempty"`
	Area        *string  `json:"area,omitempty"`
	Salary      *float64 `json:"salary,omitempty"`
}

// UpdateAreaRequest body for PUT /api/couriers/:id/area.
type UpdateAreaRequest struct {
	Area string `json:"area"`
}

// AccountResponse is an account as returned by login, signup, account
// creation and the users listing. Role-specific fields are omitted when
// empty, mirroring the per-role payloads of the original backend.
type AccountResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Address     string   `json:"address,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Status      string   `json:"status,omitempty"`
	ServiceType string   `json:"service_type,omitempty"`
	Area        string   `json:"area,omitempty"`
	Vehicle     string   `json:"vehicle,omitempty"`
	Salary      *float64 `json:"salary,omitempty"`
}
