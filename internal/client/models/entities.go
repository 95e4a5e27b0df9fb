package models

// WarriorStatus values accepted by the backend.
const (
	WarriorStatusActive   = "active"
	WarriorStatusInactive = "inactive"
)

// Ranks in display order, as the admin form offers them.
var WarriorRanks = []string{
	"Binh nhì", "Binh nhất", "Hạ sĩ", "Trung sĩ", "Thượng sĩ",
	"Thiếu úy", "Trung úy", "Thượng úy", "Đại úy",
}

// FamilyMember is a repeatable sub-record attached to a warrior.
type FamilyMember struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

// Warrior is one personnel record.
type Warrior struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Rank       string         `json:"rank"`
	Unit       string         `json:"unit"`
	Status     string         `json:"status"`
	JoinDate   WireDate       `json:"joinDate"`
	ProvinceID string         `json:"provinceId"`
	CommuneID  string         `json:"communeId"`
	Avatar     MediaRef       `json:"avatarUrl"`
	Family     []FamilyMember `json:"familyMembers"`
}

// Category groups articles and carries a badge color.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ColorCode    string `json:"colorCode"`
	Description  string `json:"description"`
	ArticleCount int    `json:"articleCount"`
}

// Ref converts a full category into its embedded reference shape.
func (c Category) Ref() CategoryRef {
	return CategoryRef{ID: c.ID, Name: c.Name, ColorCode: c.ColorCode}
}

// Article types as the backend labels them.
const (
	ArticleTypeNews     = "news"
	ArticleTypeActivity = "activity"
)

// Article statuses.
const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

// Article is one news or activity post.
type Article struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Slug        string       `json:"slug"`
	Summary     string       `json:"summary"`
	Content     string       `json:"content"`
	Type        string       `json:"type"`
	Category    *CategoryRef `json:"category"`
	Thumbnail   MediaRef     `json:"thumbnailUrl"`
	PublishedAt WireDate     `json:"publishedAt"`
	Status      string       `json:"status"`
	Featured    bool         `json:"featured"`
	ViewCount   int          `json:"viewCount"`
}

// Quiz is a quiz/game definition shown on the public site.
type Quiz struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	QuestionCount int    `json:"questionCount"`
	Status        string `json:"status"`
}

// QuizQuestion is one question when playing a quiz. The correct answer is
// backend-owned and never shipped to the client.
type QuizQuestion struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// QuizResult is a finished play, scored by the backend.
type QuizResult struct {
	ID          string   `json:"id"`
	QuizID      string   `json:"quizId"`
	QuizTitle   string   `json:"quizTitle"`
	PlayerName  string   `json:"playerName"`
	Score       int      `json:"score"`
	Total       int      `json:"total"`
	CompletedAt WireDate `json:"completedAt"`
}

// Leave request statuses.
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// LeaveRequest is one leave record for a warrior.
type LeaveRequest struct {
	ID          string   `json:"id"`
	WarriorID   string   `json:"warriorId"`
	WarriorName string   `json:"warriorName"`
	FromDate    WireDate `json:"fromDate"`
	ToDate      WireDate `json:"toDate"`
	Reason      string   `json:"reason"`
	Status      string   `json:"status"`
}

// Province and Commune form the two-level hometown cascade.
type Province struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Commune struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ProvinceID string `json:"provinceId"`
}

// ContactMessage is the public contact form payload.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
