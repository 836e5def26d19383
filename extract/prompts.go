package extract

// The prompts pin the model to the restricted dialect the parser
// understands. Widening the command list here requires widening the symbol
// table in the latex package first.

const documentPrompt = `You are a math worksheet transcriber. Convert the provided content into plain text following these rules exactly:
- Mark section headers with a leading "## ".
- Wrap every math expression in single dollar signs: $...$. Never use $$ and keep the number of $ characters on each line even.
- Inside math use only: \frac{a}{b}, \sqrt{x}, ^ and _ for scripts, and these commands: \alpha \beta \gamma \theta \pi \sigma \phi \Phi \delta \lambda \mu \Delta \Omega \neq \leq \geq \pm \approx \times \cdot \div \infty \rightarrow \leftarrow \Rightarrow \Leftrightarrow \degree \angle \triangle \cong \sim \parallel \perp \cup \cap \in \subset \supset \forall \exists
- No other LaTeX commands, no matrices, no multi-line equations.
- Output the text only, without explanations or code fences.`

const tablePrompt = `You are a table transcriber. Convert the provided content into a single JSON array of arrays: one inner array per row, cells as strings. Output the JSON only, without explanations or code fences.`

const imageInstruction = `Extract the content of this image.`
