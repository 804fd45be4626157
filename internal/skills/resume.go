package skills

import (
	"fmt"

	"github.com/jonathan/placement-portal/internal/types"
)

// maxSkillsFound caps how many skills the parse summary echoes.
const maxSkillsFound = 3

// UploadInfo is what the portal shows immediately after a file is chosen.
type UploadInfo struct {
	FileName string `json:"file_name"`
	FileSize string `json:"file_size"`
}

// ResumeSummary is the simulated parse result. It echoes known profile data.
type ResumeSummary struct {
	UploadInfo
	Name        string   `json:"name"`
	Education   string   `json:"education"`
	SkillsFound []string `json:"skills_found"`
}

// DescribeUpload formats file metadata. Any type and size is accepted.
func DescribeUpload(file types.ResumeFile) UploadInfo {
	return UploadInfo{
		FileName: file.Name,
		FileSize: fmt.Sprintf("%.2f MB", float64(file.Size)/1024/1024),
	}
}

// ParseResume simulates resume parsing. The file content is never read.
func ParseResume(file types.ResumeFile, user *types.User) ResumeSummary {
	summary := ResumeSummary{UploadInfo: DescribeUpload(file), SkillsFound: []string{}}
	if user == nil {
		return summary
	}
	summary.Name = user.DisplayName
	summary.Education = user.Department
	n := min(len(user.Skills), maxSkillsFound)
	summary.SkillsFound = append(summary.SkillsFound, user.Skills[:n]...)
	return summary
}
