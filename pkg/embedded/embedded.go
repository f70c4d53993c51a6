package embedded

import (
	_ "embed"
)

// Embed all prompt data files
//
//go:embed data/core_data/system_prompt.txt
var SystemPromptTxt []byte

//go:embed data/core_data/base_instructions.txt
var BaseInstructionsTxt []byte

//go:embed data/core_data/eli10_style_instructions.txt
var ELI10StyleInstructionsTxt []byte

//go:embed data/core_data/normal_style_instructions.txt
var NormalStyleInstructionsTxt []byte

//go:embed data/examples/eli10_positive.txt
var ELI10PositiveExamplesTxt []byte

//go:embed data/examples/eli10_negative.txt
var ELI10NegativeExamplesTxt []byte

//go:embed data/examples/eli10_neutral.txt
var ELI10NeutralExamplesTxt []byte

//go:embed data/examples/normal_positive.txt
var NormalPositiveExamplesTxt []byte

//go:embed data/examples/normal_negative.txt
var NormalNegativeExamplesTxt []byte

//go:embed data/examples/normal_neutral.txt
var NormalNeutralExamplesTxt []byte

//go:embed data/web/index.html
var IndexHTML []byte
