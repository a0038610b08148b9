package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mindspace-care/mindspace-api/internal/appctx"
	"github.com/mindspace-care/mindspace-api/internal/authmsg"
	domain "github.com/mindspace-care/mindspace-api/internal/domain/booking"
	"github.com/mindspace-care/mindspace-api/internal/httperr"
	"github.com/mindspace-care/mindspace-api/internal/middleware"
	"github.com/mindspace-care/mindspace-api/internal/models"
	"github.com/mindspace-care/mindspace-api/internal/validation"
)

type AuthHandler struct {
	app *appctx.App
}

func NewAuthHandler(app *appctx.App) *AuthHandler {
	return &AuthHandler{app: app}
}

// --------- Requests ---------

type SignUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`

	// Therapist application fields, required when role=therapist.
	Specialization string `json:"specialization"`
	Qualifications string `json:"qualifications"`
	Bio            string `json:"bio"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

var signUpRules = map[string][]validation.Rule{
	"email":     {{Name: "required"}, {Name: "email"}},
	"password":  {{Name: "required"}, {Name: "minLength", Params: []any{6}, Message: "Password must be at least {min} characters"}},
	"full_name": {{Name: "required"}, {Name: "minLength", Params: []any{2}, Message: "Please enter your full name"}},
	"phone":     {{Name: "phone"}},
}

// --------- Handlers ---------

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	// Field rules run before any database work.
	res := h.app.Forms.Validate(map[string]any{
		"email":     req.Email,
		"password":  req.Password,
		"full_name": req.FullName,
		"phone":     req.Phone,
	}, signUpRules)
	if !res.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{
			"error_code": "validation_failed",
			"errors":     res.Errors,
		})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleTherapist {
		httperr.BadRequest(c, "invalid_role", "Role must be user or therapist.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if h.app.EmailDomainCheck != nil && !h.app.EmailDomainCheck(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid.")
		return
	}

	var count int64
	h.app.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "duplicate_email", authmsg.Lookup("duplicate_email"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", authmsg.Lookup("internal_error"))
		return
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     strings.TrimSpace(req.FullName),
		Phone:        req.Phone,
		Role:         role,
	}

	if err := h.app.DB.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", authmsg.Lookup("internal_error"))
		return
	}

	userID := user.ID
	h.app.Audit.Dispatch(auditSignup(&userID, role))

	// Therapists apply rather than enroll: the profile starts pending
	// and no token is issued until an admin approves it.
	if role == models.RoleTherapist {
		th := models.Therapist{
			UserID:         user.ID,
			Name:           user.FullName,
			Specialization: req.Specialization,
			Qualifications: req.Qualifications,
			Bio:            req.Bio,
			ApprovalStatus: string(domain.ApprovalPending),
		}
		if err := h.app.DB.Create(&th).Error; err != nil {
			httperr.Internal(c, "failed_to_create_therapist", authmsg.Lookup("internal_error"))
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"user":    userPayload(&user),
			"message": authmsg.Lookup("pending_approval"),
		})
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", authmsg.Lookup("internal_error"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  userPayload(&user),
		"token": token,
	})
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.app.DB.Where("email = ?", email).First(&user).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", authmsg.Lookup("invalid_credentials"))
			return
		}
		httperr.Internal(c, "internal_error", authmsg.Lookup("internal_error"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", authmsg.Lookup("invalid_credentials"))
		return
	}

	// Therapists only get in once approved; until then the sign-in is
	// aborted with the pending message.
	if user.Role == models.RoleTherapist {
		var th models.Therapist
		if err := h.app.DB.Where("user_id = ?", user.ID).First(&th).Error; err != nil {
			httperr.Internal(c, "internal_error", authmsg.Lookup("internal_error"))
			return
		}

		switch domain.ApprovalStatus(th.ApprovalStatus) {
		case domain.ApprovalApproved:
			// proceed
		case domain.ApprovalRejected:
			httperr.Forbidden(c, "rejected_application", authmsg.Lookup("rejected_application"))
			return
		default:
			httperr.Forbidden(c, "pending_approval", authmsg.Lookup("pending_approval"))
			return
		}
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", authmsg.Lookup("internal_error"))
		return
	}

	h.app.Session.SetUser(map[string]any{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	})

	c.JSON(http.StatusOK, gin.H{
		"user":  userPayload(&user),
		"token": token,
	})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	h.app.Session.ClearIdentity()
	c.JSON(http.StatusOK, gin.H{"status": "signed_out"})
}

// Dashboard resolves the role-specific dashboard path. Passing the
// current path makes the redirect idempotent.
func (h *AuthHandler) Dashboard(c *gin.Context) {
	role := c.MustGet(middleware.ContextUserRole).(string)

	target := map[string]string{
		models.RoleAdmin:     "/admin",
		models.RoleTherapist: "/therapist",
		models.RoleUser:      "/user",
	}[role]
	if target == "" {
		target = "/user"
	}

	current := c.Query("current")
	c.JSON(http.StatusOK, gin.H{
		"dashboard": target,
		"redirect":  current != target,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.app.Cfg.JWTSecret))
}

// --------- Payloads ---------

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
		"phone":     user.Phone,
		"role":      user.Role,
	}
}
