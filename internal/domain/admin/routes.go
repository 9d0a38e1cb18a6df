package admin

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the admin credential endpoints under r.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	admin := r.Group("/admin")
	admin.POST("/create", h.Create)
	admin.POST("/login", h.Login)
}
