package domain

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Role       Role      `json:"role"`
	Phone      string    `json:"phone,omitempty"`
	Avatar     string    `json:"avatar,omitempty"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// Token is the auth response: a bearer access token plus the user it
// authenticates.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

type Subject struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Icon     string `json:"icon,omitempty"`
}

type TutorProfile struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	FullName        string    `json:"full_name,omitempty"`
	Email           string    `json:"email,omitempty"`
	Avatar          string    `json:"avatar,omitempty"`
	Headline        string    `json:"headline,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	ExperienceYears int       `json:"experience_years"`
	Education       string    `json:"education,omitempty"`
	Certifications  []string  `json:"certifications,omitempty"`
	HourlyRate      float64   `json:"hourly_rate"`
	Currency        string    `json:"currency"`
	Languages       []string  `json:"languages"`
	TeachingStyle   string    `json:"teaching_style,omitempty"`
	Subjects        []string  `json:"subjects"`
	Country         string    `json:"country,omitempty"`
	City            string    `json:"city,omitempty"`
	Timezone        string    `json:"timezone,omitempty"`
	OffersPrivate   bool      `json:"offers_private"`
	OffersGroup     bool      `json:"offers_group"`
	TotalStudents   int       `json:"total_students"`
	TotalLessons    int       `json:"total_lessons"`
	Rating          float64   `json:"rating"`
	TotalReviews    int       `json:"total_reviews"`
	IsVerified      bool      `json:"is_verified"`
	IsFeatured      bool      `json:"is_featured"`
	IsAvailable     bool      `json:"is_available"`
	CreatedAt       time.Time `json:"created_at"`
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type SessionType string

const (
	SessionPrivate SessionType = "private"
	SessionGroup   SessionType = "group"
)

type Booking struct {
	ID              string        `json:"id"`
	StudentID       string        `json:"student_id"`
	TutorID         string        `json:"tutor_id"`
	StudentName     string        `json:"student_name,omitempty"`
	TutorName       string        `json:"tutor_name,omitempty"`
	StudentEmail    string        `json:"student_email,omitempty"`
	TutorEmail      string        `json:"tutor_email,omitempty"`
	Subject         string        `json:"subject"`
	SessionType     SessionType   `json:"session_type"`
	ScheduledAt     time.Time     `json:"scheduled_at"`
	DurationMinutes int           `json:"duration_minutes"`
	Price           float64       `json:"price"`
	Currency        string        `json:"currency"`
	Status          BookingStatus `json:"status"`
	Notes           string        `json:"notes,omitempty"`
	MeetingLink     string        `json:"meeting_link,omitempty"`
	GoogleEventID   string        `json:"google_event_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

type Review struct {
	ID            string    `json:"id"`
	StudentID     string    `json:"student_id"`
	TutorID       string    `json:"tutor_id"`
	StudentName   string    `json:"student_name,omitempty"`
	StudentAvatar string    `json:"student_avatar,omitempty"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Rating is a per-session tutor rating. SessionDate identifies the
// session it refers to; together with TutorID it is unique from the
// student's point of view.
type Rating struct {
	ID          string     `json:"id"`
	TutorID     string     `json:"tutor_id"`
	TutorName   string     `json:"tutor_name"`
	StudentID   string     `json:"student_id"`
	StudentName string     `json:"student_name"`
	Subject     string     `json:"subject"`
	Rating      int        `json:"rating"`
	Comment     string     `json:"comment"`
	SessionDate *time.Time `json:"session_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Material struct {
	ID          string    `json:"id"`
	TutorID     string    `json:"tutor_id"`
	TutorName   string    `json:"tutor_name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Subject     string    `json:"subject"`
	FileURL     string    `json:"file_url,omitempty"`
	FileName    string    `json:"file_name,omitempty"`
	FileType    string    `json:"file_type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentSubmitted AssignmentStatus = "submitted"
	AssignmentGraded    AssignmentStatus = "graded"
)

type Assignment struct {
	ID             string           `json:"id"`
	TutorID        string           `json:"tutor_id"`
	TutorName      string           `json:"tutor_name"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Subject        string           `json:"subject"`
	DueDate        time.Time        `json:"due_date"`
	MaxMarks       int              `json:"max_marks"`
	StudentID      string           `json:"student_id,omitempty"`
	StudentName    string           `json:"student_name,omitempty"`
	Status         AssignmentStatus `json:"status"`
	SubmissionURL  string           `json:"submission_url,omitempty"`
	SubmissionDate *time.Time       `json:"submission_date,omitempty"`
	ObtainedMarks  *int             `json:"obtained_marks,omitempty"`
	Feedback       string           `json:"feedback,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

type BookedStudent struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment is a financial ledger entry for a booking. Amounts are
// computed by the backend; the client only displays them.
type Payment struct {
	ID                string        `json:"id"`
	BookingID         string        `json:"booking_id"`
	StudentID         string        `json:"student_id,omitempty"`
	TutorID           string        `json:"tutor_id,omitempty"`
	SessionAmount     float64       `json:"session_amount"`
	Currency          string        `json:"currency"`
	AdmissionFee      float64       `json:"admission_fee"`
	CommissionFee     float64       `json:"commission_fee"`
	TotalPlatformFee  float64       `json:"total_platform_fee"`
	TutorEarnings     float64       `json:"tutor_earnings"`
	Status            PaymentStatus `json:"status"`
	IsFirstBooking    bool          `json:"is_first_booking"`
	RazorpayOrderID   string        `json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string        `json:"razorpay_payment_id,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
}

type PaymentSummary struct {
	ID               string        `json:"id"`
	BookingID        string        `json:"booking_id"`
	SessionAmount    float64       `json:"session_amount"`
	Currency         string        `json:"currency"`
	TotalPlatformFee float64       `json:"total_platform_fee"`
	Status           PaymentStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
}

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalApproved  WithdrawalStatus = "approved"
	WithdrawalRejected  WithdrawalStatus = "rejected"
	WithdrawalCompleted WithdrawalStatus = "completed"
)

type PaymentMethod string

const (
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodUPI          PaymentMethod = "upi"
	MethodPayPal       PaymentMethod = "paypal"
)

type Withdrawal struct {
	ID             string           `json:"id"`
	TutorID        string           `json:"tutor_id"`
	TutorName      string           `json:"tutor_name,omitempty"`
	TutorEmail     string           `json:"tutor_email,omitempty"`
	Amount         float64          `json:"amount"`
	Currency       string           `json:"currency"`
	PaymentMethod  PaymentMethod    `json:"payment_method"`
	PaymentDetails string           `json:"payment_details,omitempty"`
	Status         WithdrawalStatus `json:"status"`
	AdminNotes     string           `json:"admin_notes,omitempty"`
	TransactionID  string           `json:"transaction_id,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	ProcessedAt    *time.Time       `json:"processed_at,omitempty"`
}

type TutorStats struct {
	TotalSessions     int     `json:"total_sessions"`
	CompletedSessions int     `json:"completed_sessions"`
	PendingSessions   int     `json:"pending_sessions"`
	CancelledSessions int     `json:"cancelled_sessions"`
	TotalEarnings     float64 `json:"total_earnings"`
	AvailableBalance  float64 `json:"available_balance"`
	PendingWithdrawal float64 `json:"pending_withdrawals"`
	WithdrawnAmount   float64 `json:"withdrawn_amount"`
	Currency          string  `json:"currency"`
	MonthlySessions   int     `json:"monthly_sessions"`
	MonthlyEarnings   float64 `json:"monthly_earnings"`
	MinimumWithdrawal float64 `json:"minimum_withdrawal_amount"`
}

type BlogStatus string

const (
	BlogDraft     BlogStatus = "draft"
	BlogPublished BlogStatus = "published"
	BlogArchived  BlogStatus = "archived"
)

type BlogPost struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         string     `json:"excerpt,omitempty"`
	Content         string     `json:"content"`
	FeaturedImage   string     `json:"featured_image,omitempty"`
	Category        string     `json:"category,omitempty"`
	Tags            []string   `json:"tags"`
	AuthorID        string     `json:"author_id"`
	AuthorName      string     `json:"author_name,omitempty"`
	AuthorAvatar    string     `json:"author_avatar,omitempty"`
	MetaTitle       string     `json:"meta_title,omitempty"`
	MetaDescription string     `json:"meta_description,omitempty"`
	Status          BlogStatus `json:"status"`
	IsFeatured      bool       `json:"is_featured"`
	Views           int        `json:"views"`
	Likes           int        `json:"likes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
}

// BlogListItem is the list representation, without the full content.
type BlogListItem struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt,omitempty"`
	FeaturedImage string     `json:"featured_image,omitempty"`
	Category      string     `json:"category,omitempty"`
	Tags          []string   `json:"tags"`
	AuthorName    string     `json:"author_name,omitempty"`
	AuthorAvatar  string     `json:"author_avatar,omitempty"`
	Status        BlogStatus `json:"status"`
	IsFeatured    bool       `json:"is_featured"`
	Views         int        `json:"views"`
	Likes         int        `json:"likes"`
	CreatedAt     time.Time  `json:"created_at"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
}

type BlogPage struct {
	Blogs      []BlogListItem `json:"blogs"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	TotalPages int            `json:"total_pages"`
}

type TimeSlot struct {
	StartTime string `json:"start_time"` // "HH:MM"
	EndTime   string `json:"end_time"`   // "HH:MM"
}

type Availability struct {
	ID                  string                `json:"id"`
	TutorID             string                `json:"tutor_id"`
	Timezone            string                `json:"timezone"`
	SessionDuration     int                   `json:"session_duration"`
	BufferTime          int                   `json:"buffer_time"`
	AdvanceBookingDays  int                   `json:"advance_booking_days"`
	MinNoticeHours      int                   `json:"min_notice_hours"`
	IsAcceptingStudents bool                  `json:"is_accepting_students"`
	WeeklySchedule      map[string][]TimeSlot `json:"weekly_schedule"`
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`
}

type BlockedDate struct {
	ID        string    `json:"id"`
	TutorID   string    `json:"tutor_id"`
	Date      time.Time `json:"date"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CalendarDay struct {
	Date        string `json:"date"` // "YYYY-MM-DD"
	IsAvailable bool   `json:"is_available"`
	IsBlocked   bool   `json:"is_blocked"`
	Reason      string `json:"reason,omitempty"`
	SlotsCount  int    `json:"slots_count"`
}

type MonthCalendar struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}

type DashboardStats struct {
	TotalUsers          int     `json:"total_users"`
	TotalStudents       int     `json:"total_students"`
	TotalTutors         int     `json:"total_tutors"`
	TotalBookings       int     `json:"total_bookings"`
	PendingBookings     int     `json:"pending_bookings"`
	ConfirmedBookings   int     `json:"confirmed_bookings"`
	CompletedBookings   int     `json:"completed_bookings"`
	CancelledBookings   int     `json:"cancelled_bookings"`
	RevenueTotal        float64 `json:"revenue_total"`
	RevenueThisMonth    float64 `json:"revenue_this_month"`
	NewUsersThisWeek    int     `json:"new_users_this_week"`
	NewBookingsThisWeek int     `json:"new_bookings_this_week"`
}

type RevenueStats struct {
	TotalRevenue           float64 `json:"total_revenue"`
	TotalAdmissionFees     float64 `json:"total_admission_fees"`
	TotalCommissionFees    float64 `json:"total_commission_fees"`
	TotalTutorPayouts      float64 `json:"total_tutor_payouts"`
	TotalPayments          int     `json:"total_payments"`
	TotalNewStudents       int     `json:"total_new_students"`
	MonthlyRevenue         float64 `json:"monthly_revenue"`
	MonthlyAdmissionFees   float64 `json:"monthly_admission_fees"`
	MonthlyCommissionFees  float64 `json:"monthly_commission_fees"`
	MonthlyBookings        int     `json:"monthly_bookings"`
	WeeklyRevenue          float64 `json:"weekly_revenue"`
	WeeklyBookings         int     `json:"weekly_bookings"`
	CommissionRate         float64 `json:"commission_rate"`
	StudentPlatformFeeRate float64 `json:"student_platform_fee_rate"`
	AdmissionRate          float64 `json:"admission_rate"`
}

type TutorEarnings struct {
	TutorID          string  `json:"tutor_id"`
	TutorName        string  `json:"tutor_name"`
	Email            string  `json:"email"`
	TotalSessions    int     `json:"total_sessions"`
	TotalEarnings    float64 `json:"total_earnings"`
	PlatformFeesPaid float64 `json:"platform_fees_paid"`
	PendingEarnings  float64 `json:"pending_earnings"`
}

type PlatformSettings struct {
	MinimumWithdrawalAmount float64 `json:"minimum_withdrawal_amount"`
	TutorCommissionRate     float64 `json:"tutor_commission_rate"`
	StudentPlatformFeeRate  float64 `json:"student_platform_fee_rate"`
	DisplayCurrency         string  `json:"display_currency"`
	INRToUSDRate            float64 `json:"inr_to_usd_rate"`
}

// Conversation is a student/tutor message thread. One conversation
// exists per pair; starting it again returns the existing one.
type Conversation struct {
	ID                 string     `json:"id"`
	StudentID          string     `json:"student_id"`
	TutorID            string     `json:"tutor_id"`
	StudentName        string     `json:"student_name"`
	TutorName          string     `json:"tutor_name"`
	LastMessageAt      *time.Time `json:"last_message_at,omitempty"`
	LastMessagePreview string     `json:"last_message_preview,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	SenderRole     Role      `json:"sender_role"`
	SenderName     string    `json:"sender_name"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

type NotificationType string

const (
	NotificationBookingNew       NotificationType = "booking_new"
	NotificationBookingConfirmed NotificationType = "booking_confirmed"
	NotificationBookingCancelled NotificationType = "booking_cancelled"
	NotificationBookingReminder  NotificationType = "booking_reminder"
	NotificationTutorVerified    NotificationType = "tutor_verified"
	NotificationTutorSuspended   NotificationType = "tutor_suspended"
	NotificationReviewReceived   NotificationType = "review_received"
	NotificationSystem           NotificationType = "system"
)

type Notification struct {
	ID          string           `json:"id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	Link        string           `json:"link,omitempty"`
	RelatedID   string           `json:"related_id,omitempty"`
	ActorID     string           `json:"actor_id,omitempty"`
	ActorName   string           `json:"actor_name,omitempty"`
	ActorAvatar string           `json:"actor_avatar,omitempty"`
	IsRead      bool             `json:"is_read"`
	CreatedAt   time.Time        `json:"created_at"`
}

type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	Total         int            `json:"total"`
	UnreadCount   int            `json:"unread_count"`
}
