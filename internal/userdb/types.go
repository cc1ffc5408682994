package userdb

type PasswdEntry struct {
	Name    string
	Passwd  string
	UID     uint32
	GID     uint32
	Age     string
	Comment string
	Gecos   string
	Home    string
	Shell   string
}

type GroupEntry struct {
	Name    string
	Passwd  string
	GID     uint32
	Members []string
}

type ShadowEntry struct {
	Name string
	Hash string
}

// UserAttrEntry is one line of the extended user attribute database
// (user_attr(4)): name:qualifier:res1:res2:attr where attr is a
// semicolon-separated list of key=value pairs.
type UserAttrEntry struct {
	Name      string
	Qualifier string
	Attr      map[string]string
}
