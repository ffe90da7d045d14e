package domain

type CreateNetworkInput struct {
	CIDR        string
	PoolStart   string
	PoolEnd     string
	Description string
}

type CreateIPInput struct {
	IP         string
	Prefix     *int
	Hostname   string
	Title      string
	Comment    string
	CustomerID *int64
}

// UpdateIPInput patches record metadata. Nil fields are left unchanged.
type UpdateIPInput struct {
	Hostname *string
	Title    *string
	Comment  *string
}

type GenerateInput struct {
	StartIP string
	EndIP   string
	Prefix  *int
	Title   string
	Comment string
}

type GenerateResult struct {
	Message string
	Created []IPRecord
}
