package participant

import (
	"errors"

	"participant-registration/internal/global/database"
	"participant-registration/internal/global/logger"
	"participant-registration/internal/global/response"
	"participant-registration/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	listTemplate      = "participant_list.html"
	detailTemplate    = "participant_detail.html"
	formTemplate      = "participant_form.html"
	userFormTemplate  = "participant_user_form.html"
	deleteTemplate    = "participant_delete.html"
	submittedTemplate = "participant_submitted.html"
)

// updateColumns 编辑时整体覆盖的列，id 和创建时间保持不变
var updateColumns = []string{
	"last_name", "first_name", "address", "email", "high_school_id", "participant_type",
	"interest1_id", "interest2_id", "interest3_id", "interest4_id", "interest5_id",
}

// failStore 数据库错误交给错误页；缺少关联的保存失败按请求错误处理
func failStore(c *gin.Context, err error) {
	if errors.Is(err, model.ErrMissingReference) {
		logger.WithContext(log, c).Warn("报名记录缺少关联", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithTips("High school and five interests are required").WithOrigin(err))
		return
	}
	logger.WithContext(log, c).Error("查询 participant 表错误", "error", err)
	response.Fail(c, response.ErrDatabase.WithOrigin(err))
}

// List 按姓氏升序列出全部报名
func List(c *gin.Context) {
	var list []model.Participant
	if err := database.DB.WithContext(c.Request.Context()).Order("last_name asc").Find(&list).Error; err != nil {
		failStore(c, err)
		return
	}
	response.HTML(c, listTemplate, "Participant List", gin.H{"participant_list": list})
}

// Detail 报名详情，附带同校报名和兴趣有交集的报名
func Detail(c *gin.Context) {
	ctx := c.Request.Context()

	var p model.Participant
	err := database.DB.WithContext(ctx).
		Preload("HighSchool").
		Preload("Interest1").
		Preload("Interest2").
		Preload("Interest3").
		Preload("Interest4").
		Preload("Interest5").
		First(&p, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Fail(c, response.ErrNotFound)
		return
	} else if err != nil {
		failStore(c, err)
		return
	}

	var sameSchool, sharedTopic []model.Participant
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return database.DB.WithContext(gctx).
			Where("high_school_id = ? AND id <> ?", p.HighSchoolID, p.ID).
			Order("last_name asc").
			Find(&sameSchool).Error
	})
	g.Go(func() error {
		ids := p.InterestIDs()
		return database.DB.WithContext(gctx).
			Where("id <> ?", p.ID).
			Where("(interest1_id IN ? OR interest2_id IN ? OR interest3_id IN ? OR interest4_id IN ? OR interest5_id IN ?)",
				ids, ids, ids, ids, ids).
			Order("last_name asc").
			Find(&sharedTopic).Error
	})
	if err := g.Wait(); err != nil {
		failStore(c, err)
		return
	}

	response.HTML(c, detailTemplate, "Participant Detail", gin.H{
		"participant": &p,
		"highSchools": sameSchool,
		"topics":      sharedTopic,
	})
}

// renderForm 渲染表单页，未传入 o 时重新读取下拉列表
func renderForm(c *gin.Context, tmpl, title string, o *options, data gin.H) {
	if o == nil {
		var err error
		if o, err = fetchOptions(c.Request.Context()); err != nil {
			failStore(c, err)
			return
		}
	}
	data["highSchool_list"] = o.HighSchools
	data["topic_list"] = o.Topics
	if _, ok := data["selected_highSchool"]; !ok {
		data["selected_highSchool"] = ""
	}
	response.HTML(c, tmpl, title, data)
}

func bindForm(c *gin.Context) (*Form, bool) {
	var f Form
	if err := c.ShouldBindWith(&f, binding.Form); err != nil {
		logger.WithContext(log, c).Warn("绑定报名表单失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return nil, false
	}
	return &f, true
}

// create 新建报名的公共流程；校验失败时带着提交内容和错误重新渲染原表单
// 公开表单不接受 participantType，且要求选择高中
func create(c *gin.Context, public bool) {
	f, ok := bindForm(c)
	if !ok {
		return
	}
	table, tmpl := adminRules, formTemplate
	if public {
		f.ParticipantType = ""
		table, tmpl = publicRules, userFormTemplate
	}
	errs := f.Check(table)
	p := f.Participant("")

	if len(errs) > 0 {
		renderForm(c, tmpl, "Create Participant", nil, gin.H{
			"participant":         p,
			"selected_highSchool": p.HighSchoolID,
			"errors":              errs,
		})
		return
	}

	if err := database.DB.WithContext(c.Request.Context()).Omit(clause.Associations).Create(p).Error; err != nil {
		failStore(c, err)
		return
	}
	log.Info("新建报名", "participant_id", p.ID, "public", public)
	if public {
		response.Redirect(c, submittedPath)
		return
	}
	response.Redirect(c, p.URL())
}

// CreateGet 后台新建表单
func CreateGet(c *gin.Context) {
	renderForm(c, formTemplate, "Create Participant", nil, gin.H{})
}

// CreatePost 后台新建，成功后跳转到详情页
func CreatePost(c *gin.Context) {
	create(c, false)
}

// CreateUserGet 公开报名表单
func CreateUserGet(c *gin.Context) {
	renderForm(c, userFormTemplate, "Create Participant", nil, gin.H{})
}

// CreateUserPost 公开报名，成功后跳转到提交成功页
func CreateUserPost(c *gin.Context) {
	create(c, true)
}

// UpdateGet 编辑表单，预选当前高中
func UpdateGet(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		p     model.Participant
		o     options
		found = true
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := database.DB.WithContext(gctx).Preload("HighSchool").First(&p, "id = ?", c.Param("id")).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			found = false
			return nil
		}
		return err
	})
	loadOptions(gctx, g, &o)
	if err := g.Wait(); err != nil {
		failStore(c, err)
		return
	}
	if !found {
		response.Fail(c, response.ErrNotFound)
		return
	}

	renderForm(c, formTemplate, "Update Participant", &o, gin.H{
		"participant":         &p,
		"selected_highSchool": p.HighSchoolID,
	})
}

// UpdatePost 用提交内容整体覆盖记录，保留 id
func UpdatePost(c *gin.Context) {
	f, ok := bindForm(c)
	if !ok {
		return
	}
	errs := f.Check(adminRules)
	p := f.Participant(c.Param("id"))

	if len(errs) > 0 {
		renderForm(c, formTemplate, "Update Participant", nil, gin.H{
			"participant":         p,
			"selected_highSchool": p.HighSchoolID,
			"errors":              errs,
		})
		return
	}

	result := database.DB.WithContext(c.Request.Context()).Model(p).Select(updateColumns).Updates(p)
	if result.Error != nil {
		failStore(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		response.Fail(c, response.ErrNotFound)
		return
	}
	log.Info("更新报名", "participant_id", p.ID)
	response.Redirect(c, p.URL())
}

// DeleteGet 删除确认页，记录不存在时回到列表
func DeleteGet(c *gin.Context) {
	var p model.Participant
	err := database.DB.WithContext(c.Request.Context()).First(&p, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Redirect(c, listPath)
		return
	} else if err != nil {
		failStore(c, err)
		return
	}
	response.HTML(c, deleteTemplate, "Delete Participant", gin.H{"participant": &p})
}

// DeletePost 物理删除表单中 participantid 对应的记录，不存在时什么也不做
func DeletePost(c *gin.Context) {
	id := c.PostForm("participantid")
	result := database.DB.WithContext(c.Request.Context()).Where("id = ?", id).Delete(&model.Participant{})
	if result.Error != nil {
		failStore(c, result.Error)
		return
	}
	log.Info("删除报名", "participant_id", id, "rows", result.RowsAffected)
	response.Redirect(c, listPath)
}

// Submitted 公开报名提交成功页
func Submitted(c *gin.Context) {
	response.HTML(c, submittedTemplate, "Thank You For Your Submission", nil)
}
