package participant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validForm() *Form {
	return &Form{
		FirstName:  "Jane",
		LastName:   "Doe",
		Address:    "1 Main St",
		Email:      "j@x.com",
		HighSchool: "hs-1",
		Interest1:  "t-1",
		Interest2:  "t-2",
		Interest3:  "t-3",
		Interest4:  "t-4",
		Interest5:  "t-5",
	}
}

func messages(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Msg)
	}
	return out
}

func TestCheckValidForm(t *testing.T) {
	f := validForm()
	require.Empty(t, f.Check(adminRules))
	require.Empty(t, validForm().Check(publicRules))

	p := f.Participant("")
	require.Equal(t, "Doe, Jane", p.Name())
	require.Equal(t, "1 Main St", p.Address)
	require.Equal(t, []string{"t-1", "t-2", "t-3", "t-4", "t-5"}, p.InterestIDs())
}

func TestCheckNonAlphanumericName(t *testing.T) {
	f := validForm()
	f.FirstName = "J@ne"
	errs := f.Check(adminRules)
	require.Equal(t, []FieldError{{Param: "firstName", Msg: "First name has non-alphanumeric characters."}}, errs)
}

func TestCheckStopsAtFirstFailurePerField(t *testing.T) {
	f := validForm()
	f.FirstName = "   "
	f.LastName = ""
	errs := f.Check(adminRules)
	require.Equal(t, []string{"First name must be specified.", "Last name must be specified."}, messages(errs))
}

func TestCheckRequiredContactFields(t *testing.T) {
	f := validForm()
	f.Address = " "
	f.Email = ""
	require.Equal(t, []string{"Address is required", "Email is required"}, messages(f.Check(adminRules)))
}

func TestCheckMaxLength(t *testing.T) {
	f := validForm()
	f.LastName = strings.Repeat("a", 101)
	f.Address = strings.Repeat("b", 101)
	require.Equal(t, []string{
		"Last name must be at most 100 characters.",
		"Address must be at most 100 characters.",
	}, messages(f.Check(adminRules)))

	f = validForm()
	f.LastName = strings.Repeat("a", 100)
	require.Empty(t, f.Check(adminRules))
}

func TestCheckParticipantTypeLength(t *testing.T) {
	f := validForm()
	f.ParticipantType = strings.Repeat("m", 101)
	require.Equal(t, []FieldError{{Param: "participantType", Msg: "Participant type must be at most 100 characters."}}, f.Check(adminRules))

	// 长度按转义前计算，转义后最长 600
	f = validForm()
	f.ParticipantType = strings.Repeat("'", 100)
	require.Empty(t, f.Check(adminRules))
	require.Len(t, f.ParticipantType, 600)
}

func TestCheckHighSchoolOnlyRequiredOnPublicForm(t *testing.T) {
	f := validForm()
	f.HighSchool = ""
	require.Empty(t, f.Check(adminRules))

	f = validForm()
	f.HighSchool = "  "
	require.Equal(t, []FieldError{{Param: "highSchool", Msg: "High School is required"}}, f.Check(publicRules))
}

func TestCheckDistinctInterests(t *testing.T) {
	f := validForm()
	f.Interest5 = f.Interest1
	require.Equal(t, []string{distinctInterestsMsg}, messages(f.Check(adminRules)))

	// 空值不算重复，缺失由保存时校验
	f = validForm()
	f.Interest4, f.Interest5 = "", ""
	require.Empty(t, f.Check(adminRules))
}

func TestCheckTrimsAndEscapesEveryField(t *testing.T) {
	f := validForm()
	f.FirstName = "  Jane\t"
	f.Address = ` 1 Main St <b>"Apt" 2</b> `
	f.ParticipantType = " o'neil "
	errs := f.Check(adminRules)
	require.Empty(t, errs)
	require.Equal(t, "Jane", f.FirstName)
	require.Equal(t, "1 Main St &lt;b&gt;&quot;Apt&quot; 2&lt;&#x2F;b&gt;", f.Address)
	require.Equal(t, "o&#x27;neil", f.ParticipantType)
}

func TestCheckEscapesEvenWhenInvalid(t *testing.T) {
	f := validForm()
	f.FirstName = "<script>"
	errs := f.Check(adminRules)
	require.Len(t, errs, 1)
	require.Equal(t, "&lt;script&gt;", f.FirstName)
}

func TestEscape(t *testing.T) {
	cases := map[string]string{
		"plain":    "plain",
		"a & b":    "a &amp; b",
		`\path`:    "&#x5C;path",
		"`tick`":   "&#96;tick&#96;",
		"&amp;":    "&amp;amp;",
		"x/y<z>'q": "x&#x2F;y&lt;z&gt;&#x27;q",
	}
	for in, want := range cases {
		require.Equal(t, want, Escape(in), in)
	}
}

func TestCheckAcceptedNamesAreAlphanumeric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := validForm()
		f.FirstName = rapid.String().Draw(t, "firstName")
		f.LastName = rapid.String().Draw(t, "lastName")
		if len(f.Check(adminRules)) > 0 {
			return
		}
		for _, name := range []string{f.FirstName, f.LastName} {
			if name == "" {
				t.Fatalf("accepted empty name")
			}
			for _, r := range name {
				if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
					t.Fatalf("accepted name %q with %q", name, r)
				}
			}
		}
	})
}

func TestCheckKeepsAlphanumericNames(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		first := rapid.StringMatching(`[A-Za-z0-9]{1,100}`).Draw(t, "first")
		last := rapid.StringMatching(`[A-Za-z0-9]{1,100}`).Draw(t, "last")
		f := validForm()
		f.FirstName, f.LastName = " "+first, last+" "
		if errs := f.Check(adminRules); len(errs) > 0 {
			t.Fatalf("unexpected errors %v", errs)
		}
		if f.FirstName != first || f.LastName != last {
			t.Fatalf("got %q %q", f.FirstName, f.LastName)
		}
	})
}
