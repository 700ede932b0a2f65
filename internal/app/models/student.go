package models

// Student is a student profile bound one-to-one to an account; the
// account ID is the primary key. EnrollmentID is unique per promotion
// and feeds the matricule generator. A student may propose up to two
// distinct companies for their internship.
type Student struct {
	UserID             int64      `json:"userId" db:"user_id"`
	Matricule          string     `json:"matricule" db:"matricule"`
	FullName           string     `json:"fullName" db:"full_name"`
	PromotionID        *int64     `json:"promotionId,omitempty" db:"promotion_id"`
	EnrollmentID       int        `json:"enrollmentId" db:"enrollment_id"`
	ProposedCompany1ID *int64     `json:"proposedCompany1Id,omitempty" db:"proposed_company1_id"`
	ProposedCompany2ID *int64     `json:"proposedCompany2Id,omitempty" db:"proposed_company2_id"`
	User               *User      `json:"user,omitempty"`
	Promotion          *Promotion `json:"promotion,omitempty"`
	ProposedCompany1   *Company   `json:"proposedCompany1,omitempty"`
	ProposedCompany2   *Company   `json:"proposedCompany2,omitempty"`
}

// ProposedCompanyIDs returns the non-nil proposed company IDs.
func (s *Student) ProposedCompanyIDs() []int64 {
	ids := make([]int64, 0, 2)
	if s.ProposedCompany1ID != nil {
		ids = append(ids, *s.ProposedCompany1ID)
	}
	if s.ProposedCompany2ID != nil {
		ids = append(ids, *s.ProposedCompany2ID)
	}
	return ids
}

// HasProposed reports whether companyID is among the student's proposals.
func (s *Student) HasProposed(companyID int64) bool {
	for _, id := range s.ProposedCompanyIDs() {
		if id == companyID {
			return true
		}
	}
	return false
}
