package participant

import (
	"github.com/gin-gonic/gin"
)

const (
	listPath      = "/index/participants"
	submittedPath = "/users/submitted"
)

func (p *ModuleParticipant) InitRouter(r *gin.RouterGroup) {
	// 后台管理页面
	adminGroup := r.Group("/index")
	{
		adminGroup.GET("/participants", List)
		adminGroup.GET("/participants/export", Export)

		adminGroup.GET("/participant/create", CreateGet)
		adminGroup.POST("/participant/create", CreatePost)

		adminGroup.GET("/participant/:id", Detail)

		adminGroup.GET("/participant/:id/update", UpdateGet)
		adminGroup.POST("/participant/:id/update", UpdatePost)

		// 删除时以表单里的 participantid 为准
		adminGroup.GET("/participant/:id/delete", DeleteGet)
		adminGroup.POST("/participant/:id/delete", DeletePost)
	}

	// 公开报名页面
	userGroup := r.Group("/users")
	{
		userGroup.GET("/participant/create", CreateUserGet)
		userGroup.POST("/participant/create", CreateUserPost)
		userGroup.GET("/submitted", Submitted)
	}
}
