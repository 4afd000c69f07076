package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/charterforge/charter-forge/internal/application"
	"github.com/charterforge/charter-forge/internal/domain/entity"
	"github.com/charterforge/charter-forge/pkg/helpers"
	"github.com/charterforge/charter-forge/pkg/response"
	"github.com/charterforge/charter-forge/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.AuthService
	JWT     *helpers.JWTManager
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAuthHandler(svc *application.AuthService, jwt *helpers.JWTManager, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, JWT: jwt, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	FullName        string `json:"fullName"`
	BusinessName    string `json:"businessName"`
	Position        string `json:"position"`
	BusinessType    string `json:"businessType"`
	YearsInBusiness string `json:"yearsInBusiness"`
	AnnualRevenue   string `json:"annualRevenue"`
	Location        string `json:"location"`
	OtherOwners     string `json:"otherOwners"`
	Phone           string `json:"phone"`
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	token, exp, err := h.JWT.GenerateToken(u.ID, u.Role)
	if err != nil {
		h.Logger.WithError(err).Error("generate session token failed")
		response.Fail(c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	h.Cookies.SetSession(c, token, exp)
	response.OK(c, http.StatusOK, u, "login successful")
}

// Logout POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Svc.Logout(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	h.Cookies.Clear(c)
	response.OK(c, http.StatusOK, gin.H{"logged_out": true}, "logged out")
}

// Session GET /api/session — restores the stored session at app start.
func (h *AuthHandler) Session(c *gin.Context) {
	u, err := h.Svc.CurrentUser(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, u, "session")
}

// GetProfile GET /api/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	p, err := h.Svc.GetProfile(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, p, "profile")
}

// UpdateProfile PUT /api/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.UpdateProfile(c.Request.Context(), c.GetString("userID"), entity.Profile{
		FullName:        req.FullName,
		BusinessName:    req.BusinessName,
		Position:        req.Position,
		BusinessType:    req.BusinessType,
		YearsInBusiness: req.YearsInBusiness,
		AnnualRevenue:   req.AnnualRevenue,
		Location:        req.Location,
		OtherOwners:     req.OtherOwners,
		Phone:           req.Phone,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, p, "profile updated")
}
