package xray

import "strings"

// Common IT role synonyms for broader matching. The first entry of each
// list is the canonical form. Immutable after load.
var roleSynonyms = map[string][]string{
	"java developer":         {"java developer", "java engineer", "java programmer", "j2ee developer"},
	"python developer":       {"python developer", "python engineer", "django developer", "flask developer"},
	"data engineer":          {"data engineer", "etl developer", "data pipeline engineer", "big data engineer"},
	"devops engineer":        {"devops engineer", "site reliability engineer", "sre", "platform engineer", "cloud engineer"},
	"full stack developer":   {"full stack developer", "fullstack developer", "full-stack developer", "mern developer", "mean developer"},
	"qa engineer":            {"qa engineer", "qa analyst", "test engineer", "sdet", "quality assurance"},
	"business analyst":       {"business analyst", "ba", "business systems analyst", "requirements analyst"},
	"data analyst":           {"data analyst", "reporting analyst", "bi analyst", "analytics engineer"},
	"salesforce developer":   {"salesforce developer", "sfdc developer", "salesforce engineer", "salesforce admin"},
	"aws engineer":           {"aws engineer", "aws architect", "aws devops", "cloud engineer aws"},
	"azure engineer":         {"azure engineer", "azure architect", "azure devops", "cloud engineer azure"},
	".net developer":         {".net developer", "dotnet developer", "c# developer", "asp.net developer"},
	"react developer":        {"react developer", "react engineer", "reactjs developer", "frontend developer react"},
	"scrum master":           {"scrum master", "agile coach", "agile scrum master"},
	"project manager":        {"project manager", "program manager", "it project manager", "technical project manager"},
	"data scientist":         {"data scientist", "ml engineer", "machine learning engineer", "ai engineer"},
	"sap consultant":         {"sap consultant", "sap developer", "sap functional", "sap basis"},
	"network engineer":       {"network engineer", "network administrator", "cisco engineer"},
	"security engineer":      {"security engineer", "cybersecurity engineer", "information security", "infosec engineer"},
	"database administrator": {"database administrator", "dba", "database engineer", "sql dba"},
}

// RoleSynonyms returns alternative phrasings for a job title. Lookup is
// exact on the trimmed, lowercased title; unknown titles come back as a
// single-element slice holding the input unchanged.
func RoleSynonyms(title string) []string {
	if synonyms, ok := roleSynonyms[strings.ToLower(strings.TrimSpace(title))]; ok {
		out := make([]string, len(synonyms))
		copy(out, synonyms)
		return out
	}
	return []string{title}
}
