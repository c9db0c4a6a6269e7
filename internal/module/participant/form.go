package participant

import (
	"strings"

	"participant-registration/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Form 报名表单，字段名与页面 input 的 name 一致
type Form struct {
	FirstName       string `form:"firstName"`
	LastName        string `form:"lastName"`
	Address         string `form:"address"`
	Email           string `form:"email"`
	HighSchool      string `form:"highSchool"`
	ParticipantType string `form:"participantType"`
	Interest1       string `form:"interest1"`
	Interest2       string `form:"interest2"`
	Interest3       string `form:"interest3"`
	Interest4       string `form:"interest4"`
	Interest5       string `form:"interest5"`
}

// FieldError 页面上逐条展示的校验错误
type FieldError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
}

// rule 一个 validator tag 与失败时的提示
type rule struct {
	tag     string
	message string
}

type fieldRules struct {
	param string
	value func(*Form) string
	rules []rule
}

var (
	firstNameRules = fieldRules{"firstName", func(f *Form) string { return f.FirstName }, []rule{
		{"required", "First name must be specified."},
		{"alphanum", "First name has non-alphanumeric characters."},
		{"max=100", "First name must be at most 100 characters."},
	}}
	lastNameRules = fieldRules{"lastName", func(f *Form) string { return f.LastName }, []rule{
		{"required", "Last name must be specified."},
		{"alphanum", "Last name has non-alphanumeric characters."},
		{"max=100", "Last name must be at most 100 characters."},
	}}
	addressRules = fieldRules{"address", func(f *Form) string { return f.Address }, []rule{
		{"required", "Address is required"},
		{"max=100", "Address must be at most 100 characters."},
	}}
	emailRules = fieldRules{"email", func(f *Form) string { return f.Email }, []rule{
		{"required", "Email is required"},
		{"max=100", "Email must be at most 100 characters."},
	}}
	participantTypeRules = fieldRules{"participantType", func(f *Form) string { return f.ParticipantType }, []rule{
		{"max=100", "Participant type must be at most 100 characters."},
	}}
	highSchoolRules = fieldRules{"highSchool", func(f *Form) string { return f.HighSchool }, []rule{
		{"required", "High School is required"},
	}}
)

// adminRules 后台新建/编辑表单
var adminRules = []fieldRules{firstNameRules, lastNameRules, addressRules, emailRules, participantTypeRules}

// publicRules 公开报名表单额外要求选择高中
var publicRules = []fieldRules{firstNameRules, lastNameRules, addressRules, emailRules, highSchoolRules}

const distinctInterestsMsg = "Interests must be distinct."

var escaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// Escape 转义 HTML 敏感字符
func Escape(s string) string {
	return escaper.Replace(s)
}

func (f *Form) fields() []*string {
	return []*string{
		&f.FirstName, &f.LastName, &f.Address, &f.Email, &f.HighSchool, &f.ParticipantType,
		&f.Interest1, &f.Interest2, &f.Interest3, &f.Interest4, &f.Interest5,
	}
}

func (f *Form) interests() []string {
	return []string{f.Interest1, f.Interest2, f.Interest3, f.Interest4, f.Interest5}
}

// Check 先去掉首尾空白再按规则表校验，每个字段遇到第一条失败的规则即停止；
// 之后无论校验结果如何都对所有字段做转义
func (f *Form) Check(table []fieldRules) []FieldError {
	for _, p := range f.fields() {
		*p = strings.TrimSpace(*p)
	}

	var errs []FieldError
	for _, fr := range table {
		v := fr.value(f)
		for _, r := range fr.rules {
			if validate.Var(v, r.tag) != nil {
				errs = append(errs, FieldError{Param: fr.param, Msg: r.message})
				break
			}
		}
	}
	if hasDuplicate(f.interests()) {
		errs = append(errs, FieldError{Param: "interests", Msg: distinctInterestsMsg})
	}

	for _, p := range f.fields() {
		*p = Escape(*p)
	}
	return errs
}

// hasDuplicate 忽略空值
func hasDuplicate(ids []string) bool {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}

// Participant 用（已转义的）表单内容构造记录，id 为空表示新建
func (f *Form) Participant(id string) *model.Participant {
	return &model.Participant{
		Model:           model.Model{ID: id},
		LastName:        f.LastName,
		FirstName:       f.FirstName,
		Address:         f.Address,
		Email:           f.Email,
		HighSchoolID:    f.HighSchool,
		ParticipantType: f.ParticipantType,
		Interest1ID:     f.Interest1,
		Interest2ID:     f.Interest2,
		Interest3ID:     f.Interest3,
		Interest4ID:     f.Interest4,
		Interest5ID:     f.Interest5,
	}
}
